// Package httpcfg provides type-safe configuration hints for HTTP
// transports. Options are hints: a transport that does not support one is
// free to ignore it.
package httpcfg

import "time"

// Option is a type-safe key for a configuration hint. The name exists for
// debugging only: two options with the same name are still distinct keys,
// because attribute maps compare keys by identity.
type Option[T any] struct {
	name string
}

func NewOption[T any](name string) *Option[T] {
	return &Option[T]{name: name}
}

func (o *Option[T]) Name() string {
	return o.name
}

func (o *Option[T]) String() string {
	return o.name
}

var (
	// SocketTimeout bounds each read from the underlying socket.
	SocketTimeout = NewOption[time.Duration]("SocketTimeout")

	// ConnectTimeout bounds establishing a connection to the service.
	ConnectTimeout = NewOption[time.Duration]("ConnectionTimeout")

	// MaxConnections caps the connection pool size.
	MaxConnections = NewOption[int]("MaxConnections")

	// StrictHostnameVerification controls TLS hostname verification.
	// Nearly every service wants it on; endpoints served through wildcard
	// certificates for virtual-hosted addressing are the exception.
	StrictHostnameVerification = NewOption[bool]("UseStrictHostnameVerification")
)

const (
	defaultSocketTimeout  = 50 * time.Second
	defaultConnectTimeout = 10 * time.Second
	defaultMaxConnections = 50
)

// GlobalDefaults returns the stock hints applied underneath any
// caller-supplied configuration.
func GlobalDefaults() AttributeMap {
	b := NewBuilder()
	Put(b, SocketTimeout, defaultSocketTimeout)
	Put(b, ConnectTimeout, defaultConnectTimeout)
	Put(b, MaxConnections, defaultMaxConnections)
	Put(b, StrictHostnameVerification, true)

	return b.Build()
}
