package db

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ConnectWithRetry uses retry options set in ConnectionOptions{}
func ConnectWithRetry(ctx context.Context, options ConnectionOptions) (*sqlx.DB, error) {
	dsn := maskDSN(options.Credentials.DriverName, options.Credentials.DSN)

	type result struct {
		db  *sqlx.DB
		err error
	}
	connCh := make(chan result, 1)

	log.Println("connecting to database", dsn)

	go func() {
		var (
			db  *sqlx.DB
			err error
		)
		for try := 1; ; try++ {
			db, err = ConnectWithOptions(ctx, options)
			if err == nil {
				break
			}
			log.Printf("can't connect, dsn=%s, err=%s, try=%d", dsn, err, try)
			if try >= options.Retries {
				err = errors.Wrapf(err, "could not connect, dsn=%s, tries=%d", dsn, try)
				break
			}

			select {
			case <-ctx.Done():
				err = errors.WithStack(ctx.Err())
			case <-time.After(options.RetryDelay):
				continue
			}
			break
		}
		connCh <- result{db, err}
	}()

	// a zero timeout waits on the connection attempts only
	var timeout <-chan time.Time
	if options.ConnectTimeout > 0 {
		timeout = time.After(options.ConnectTimeout)
	}

	select {
	case res := <-connCh:
		return res.db, res.err
	case <-timeout:
		return nil, errors.Errorf("db connect timed out, dsn=%s", dsn)
	case <-ctx.Done():
		return nil, errors.Errorf("db connection cancelled, dsn=%s", dsn)
	}
}
