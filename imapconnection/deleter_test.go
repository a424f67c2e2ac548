// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"errors"
	"testing"

	"github.com/emersion/go-imap"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func deletedCriteria() *imap.SearchCriteria {
	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}
	return criteria
}

func TestUidPlusDeleter_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockdeletedFlaggerAndUidExpunger(ctrl)
	deleter := uidPlusDeleter{conn}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uint32(4))
	conn.EXPECT().
		flagDeleted(gomock.Eq(uint32(4))).
		Return(seqset, nil)

	conn.EXPECT().
		UidExpunge(gomock.Eq(seqset), gomock.Any()).
		DoAndReturn(func(seqSet *imap.SeqSet, ch chan uint32) error {
			ch <- uint32(4)
			close(ch)
			return nil
		})

	err := deleter.delete(uint32(4))
	assert.NoError(t, err)
}

func TestUidPlusDeleter_DeleteNothingExpunged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockdeletedFlaggerAndUidExpunger(ctrl)
	deleter := uidPlusDeleter{conn}

	conn.EXPECT().
		flagDeleted(gomock.Eq(uint32(4))).
		Return(&imap.SeqSet{}, nil)

	conn.EXPECT().
		UidExpunge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(seqSet *imap.SeqSet, ch chan uint32) error {
			close(ch)
			return nil
		})

	err := deleter.delete(uint32(4))
	assert.EqualError(t, err, "unexpected number of expunges, expected 1 got 0")
}

func TestUidPlusDeleter_DeleteFlagError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockdeletedFlaggerAndUidExpunger(ctrl)
	deleter := uidPlusDeleter{conn}

	conn.EXPECT().
		flagDeleted(gomock.Eq(uint32(4))).
		Return(nil, errors.New("connection reset"))

	err := deleter.delete(uint32(4))
	assert.EqualError(t, err, "could not flag item as deleted: connection reset")
}

func TestCompatibilityDeleter_DeleteReadyOk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockdeleteFlaggerAndExpunger(ctrl)
	deleter := compatibilityDeleter{conn}

	conn.EXPECT().
		UidSearch(gomock.Eq(deletedCriteria())).
		Return([]uint32{}, nil)

	assert.NoError(t, deleter.deleteReady())
}

func TestCompatibilityDeleter_DeleteReadyNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockdeleteFlaggerAndExpunger(ctrl)
	deleter := compatibilityDeleter{conn}

	conn.EXPECT().
		UidSearch(gomock.Eq(deletedCriteria())).
		Return([]uint32{1}, nil)

	assert.ErrorIs(t, deleter.deleteReady(), ErrItemsWithDeletedFlagPresent)
}

func TestCompatibilityDeleter_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockdeleteFlaggerAndExpunger(ctrl)
	deleter := compatibilityDeleter{conn}

	conn.EXPECT().
		UidSearch(gomock.Eq(deletedCriteria())).
		Return([]uint32{}, nil)

	seqset := &imap.SeqSet{}
	seqset.AddNum(uint32(2))
	conn.EXPECT().
		flagDeleted(gomock.Eq(uint32(2))).
		Return(seqset, nil)

	conn.EXPECT().
		Expunge(gomock.Any()).
		DoAndReturn(func(ch chan uint32) error {
			ch <- uint32(1)
			close(ch)
			return nil
		})

	err := deleter.delete(uint32(2))
	assert.NoError(t, err)
}

func TestCompatibilityDeleter_DeleteButNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockdeleteFlaggerAndExpunger(ctrl)
	deleter := compatibilityDeleter{conn}

	conn.EXPECT().
		UidSearch(gomock.Eq(deletedCriteria())).
		Return([]uint32{1}, nil)

	err := deleter.delete(uint32(2))
	assert.EqualError(t, err, "folder is not ready for delete: folder has previous items with delete flag set")
}

func TestCompatibilityDeleter_DeleteExpungeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockdeleteFlaggerAndExpunger(ctrl)
	deleter := compatibilityDeleter{conn}

	conn.EXPECT().
		UidSearch(gomock.Any()).
		Return([]uint32{}, nil)
	conn.EXPECT().
		flagDeleted(gomock.Eq(uint32(2))).
		Return(&imap.SeqSet{}, nil)
	conn.EXPECT().
		Expunge(gomock.Any()).
		DoAndReturn(func(ch chan uint32) error {
			close(ch)
			return errors.New("server busy")
		})

	err := deleter.delete(uint32(2))
	assert.EqualError(t, err, "could not expunge mail: server busy")
}
