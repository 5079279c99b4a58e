// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"crypto/x509"
	"io"
	"io/ioutil"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/ledger"
)

var _ ledger.Service = (*Client)(nil)

// default values
const (
	defaultTimeout      = 30 * time.Second
	defaultDialAttempts = 3
	dialInterval        = 2 * time.Second
)

// Options - connection parameters
type Options struct {
	Connect           string        // host:port of the ledger gateway
	Certificate       string        // optional CA certificate file (PEM)
	Insecure          bool          // skip certificate verification
	Timeout           time.Duration // per call deadline
	RequestsPerSecond float64       // zero means no limit
	Burst             int
	DialAttempts      int
	Verbose           bool
	Handle            io.Writer // if verbose is set output requests here
}

// Client - to hold RPC connections streams
type Client struct {
	log       *logger.L
	connect   string
	tlsConfig *tls.Config
	timeout   time.Duration
	attempts  int
	limiter   *rate.Limiter

	conn   net.Conn
	client *rpc.Client

	verbose bool
	handle  io.Writer
}

// NewClient - create an unconnected client, Open makes the connection
func NewClient(options Options, log *logger.L) (*Client, error) {
	if "" == options.Connect {
		return nil, fault.ErrRequiredConnect
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: options.Insecure,
	}

	if "" != options.Certificate {
		pem, err := ioutil.ReadFile(options.Certificate)
		if nil != err {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fault.ErrCertificateFile
		}
		tlsConfig.RootCAs = pool
	}

	return newClient(options, tlsConfig, log), nil
}

// NewConnectedClient - client over an existing connection
func NewConnectedClient(conn net.Conn, options Options, log *logger.L) *Client {
	c := newClient(options, nil, log)
	c.conn = conn
	c.client = jsonrpc.NewClient(conn)
	return c
}

func newClient(options Options, tlsConfig *tls.Config, log *logger.L) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := options.DialAttempts
	if attempts <= 0 {
		attempts = defaultDialAttempts
	}

	limit := rate.Inf
	burst := options.Burst
	if options.RequestsPerSecond > 0 {
		limit = rate.Limit(options.RequestsPerSecond)
		if burst <= 0 {
			burst = 1
		}
	}

	return &Client{
		log:       log,
		connect:   options.Connect,
		tlsConfig: tlsConfig,
		timeout:   timeout,
		attempts:  attempts,
		limiter:   rate.NewLimiter(limit, burst),
		verbose:   options.Verbose,
		handle:    options.Handle,
	}
}

// Open - connect to the ledger gateway, retrying the dial
func (c *Client) Open() bool {
	if nil != c.client {
		return true
	}

	dialer := &net.Dialer{
		Timeout: c.timeout,
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(dialInterval), uint64(c.attempts-1))
	err := backoff.Retry(func() error {
		conn, err := tls.DialWithDialer(dialer, "tcp", c.connect, c.tlsConfig)
		if nil != err {
			c.log.Warnf("dial: %s  error: %s", c.connect, err)
			return err
		}
		c.conn = conn
		return nil
	}, policy)
	if nil != err {
		c.log.Errorf("connect: %s  failed after %d attempts", c.connect, c.attempts)
		return false
	}

	c.client = jsonrpc.NewClient(c.conn)
	c.log.Infof("connected to: %s", c.connect)
	return true
}

// LoadWallet - ask the gateway to load its wallet
func (c *Client) LoadWallet() bool {
	var result bool
	if nil != c.call("Ledger.LoadWallet", &Arguments{}, &result) {
		return false
	}
	return result
}

// Close - shutdown the gateway connection
func (c *Client) Close() {
	if nil != c.client {
		c.client.Close()
		c.client = nil
	}
	if nil != c.conn {
		c.conn.Close()
		c.conn = nil
	}
}

// limiting for a single request
func (c *Client) rateLimit() error {
	r := c.limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// transport errors are logged and reported as fault.ErrTransport,
// the reply is left at its zero value
func (c *Client) call(method string, arguments *Arguments, reply interface{}) error {
	if nil == c.client {
		c.log.Errorf("%s: not connected", method)
		return fault.ErrTransport
	}

	if err := c.rateLimit(); nil != err {
		c.log.Errorf("%s: %s", method, err)
		return err
	}

	_ = c.printJson(method, arguments)

	if nil != c.conn {
		_ = c.conn.SetDeadline(time.Now().Add(c.timeout))
	}

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		c.log.Errorf("%s: error: %s", method, err)
		return fault.ErrTransport
	}

	_ = c.printJson(method+" reply", reply)
	return nil
}
