// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CrawX/go-mailpoll/alerts"
	"github.com/CrawX/go-mailpoll/config"
	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/imapconnection"
	"github.com/CrawX/go-mailpoll/log"
	"github.com/CrawX/go-mailpoll/mail"
	"github.com/CrawX/go-mailpoll/mailer"
	"github.com/CrawX/go-mailpoll/notifier"
	"github.com/CrawX/go-mailpoll/persistence"
	"github.com/CrawX/go-mailpoll/poller"
	"github.com/CrawX/go-mailpoll/pop3connection"
	"github.com/CrawX/go-mailpoll/receiver"
	"github.com/CrawX/go-mailpoll/redisstore"
	"github.com/CrawX/go-mailpoll/rspamd"
	"github.com/CrawX/go-mailpoll/scheduler"
	"github.com/CrawX/go-mailpoll/spamassassin"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	configFile := flag.String("config", "config.toml", "path to the config file")
	once := flag.Bool("once", false, "run a single poll cycle and exit")
	status := flag.Bool("status", false, "print dashboard problems and recent incoming emails and exit")
	flag.Parse()

	log.InitLogging("info")
	logger := log.Logger(log.LOG_MAIN)

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.WithField("error", err).Fatal("Could not load .env file")
	}

	conf, err := config.ReadConfig(*configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	redisClient, err := redisstore.NewClient(conf.RedisURL, conf.RedisPassword)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to redis")
	}
	defer redisClient.Close()

	problems := redisstore.NewProblemStore(redisClient)

	if *status {
		err = printStatus(ctx, problems, p)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not read status")
		}
		return
	}

	receiverConfigs := []receiver.ConfigFunc{receiver.WithIncomingAddresses(conf.IncomingAddresses)}
	if len(conf.SpamassassinHost) > 0 {
		sa, err := spamassassin.NewSpamassassin(ctx, conf.SpamassassinHost)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not start spamassassin connector")
		}
		receiverConfigs = append(receiverConfigs, receiver.WithSpamChecker(sa))
	}
	if len(conf.RspamdHost) > 0 {
		rs, err := rspamd.NewRspamd(ctx, conf.RspamdHost, conf.RspamdPassword)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not start rspamd connector")
		}
		receiverConfigs = append(receiverConfigs, receiver.WithSpamChecker(rs))
	}

	rejectionMailer, err := mailer.NewRejectionMailer(conf.NotificationEmail)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load rejection templates")
	}
	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     conf.SmtpHost,
		Port:     conf.SmtpPort,
		Username: conf.SmtpUser,
		Password: conf.SmtpPassword,
		SSL:      conf.SmtpSSL,
		StartTLS: conf.SmtpStartTLS,
	})

	settings := config.NewFileSource(*configFile)
	pl, err := poller.NewPoller(
		settings,
		receiver.NewReceiver(p, receiverConfigs...),
		notifier.NewNotifier(rejectionMailer, sender, p, conf.SiteName),
		p,
		redisstore.NewErrorRateStore(redisClient),
		alerts.NewAlerter(problems),
		poller.WithDialer(domain.ProtocolPop3, pop3connection.NewDialer()),
		poller.WithDialer(domain.ProtocolImap, imapconnection.NewDialer()),
	)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start poller")
	}

	if *once {
		err = pl.Execute(ctx, map[string]string{"trigger": "once"})
		if err != nil {
			logger.WithField("error", err).Fatal("Poll cycle failed")
		}
		return
	}

	if len(conf.MetricsAddress) > 0 {
		go serveMetrics(conf.MetricsAddress, logger)
	}

	logger.WithFields(logrus.Fields{
		"host":     conf.Host,
		"protocol": conf.Protocol,
		"period":   conf.PollingPeriod(),
	}).Info("Polling mailbox")
	scheduler.NewScheduler(pl, settings, conf.PollingPeriod()).Run(ctx)
}

func serveMetrics(address string, logger *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.WithField("address", address).Info("Serving metrics")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithField("error", err).Error("Metrics server stopped")
	}
}

func printStatus(ctx context.Context, problems *redisstore.ProblemStore, p *persistence.Persistence) error {
	active, err := problems.List(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Dashboard problems: %d\n", len(active))
	for _, problem := range active {
		fmt.Printf("  %s (expires in %s)\n", problem.Key, problem.ExpiresIn.Round(time.Second))
	}

	emails, err := p.RecentIncomingEmails(20)
	if err != nil {
		return err
	}

	fmt.Printf("Recent incoming emails: %d\n", len(emails))
	for _, e := range emails {
		outcome := "accepted"
		if len(e.Error) > 0 {
			outcome = e.Error
		}
		fmt.Printf("  %s %-30s %-33s %s\n", e.CreatedAt.Format(time.RFC3339), e.FromAddress, mail.ShortSubject(e.Subject), outcome)
	}
	return nil
}
