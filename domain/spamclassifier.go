// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "context"

//go:generate mockgen -destination=mocks/spamclassifier.go -package=mocks . SpamChecker

type SpamResult struct {
	IsSpam bool
	Score  float64
}

// SpamChecker screens raw incoming mail before it is accepted.
type SpamChecker interface {
	Check(ctx context.Context, rawMail []byte) (*SpamResult, error)
}
