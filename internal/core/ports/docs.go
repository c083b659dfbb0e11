// Package ports declares the contracts between the application core and its
// adapters: per-aggregate repositories, the transactional unit of work, the
// notification hub, the token service and the mailer. The core depends only
// on these interfaces; gorm, NATS and JWT live behind them.
package ports
