package canbridge

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"go.einride.tech/can/pkg/socketcan"

	"dbwd/bus"
)

// Bridge transmits actuation frames on a socketcan interface.
type Bridge struct {
	ctx  context.Context
	conn net.Conn
	tx   *socketcan.Transmitter
}

func New(ctx context.Context, iface string) (*Bridge, error) {
	conn, err := socketcan.DialContext(ctx, "can", iface)
	if err != nil {
		return nil, errors.Wrapf(err, "could not dial can interface %s", iface)
	}
	return &Bridge{
		ctx:  ctx,
		conn: conn,
		tx:   socketcan.NewTransmitter(conn),
	}, nil
}

func (b *Bridge) SendThrottle(cmd bus.ThrottleCommand) error {
	return b.tx.TransmitFrame(b.ctx, EncodeThrottle(cmd))
}

func (b *Bridge) SendBrake(cmd bus.BrakeCommand) error {
	return b.tx.TransmitFrame(b.ctx, EncodeBrake(cmd))
}

func (b *Bridge) SendSteering(cmd bus.SteeringCommand) error {
	return b.tx.TransmitFrame(b.ctx, EncodeSteering(cmd))
}

func (b *Bridge) Close() error {
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
