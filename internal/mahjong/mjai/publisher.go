package mjai

import (
	"strings"

	"github.com/nats-io/nats.go"

	"mahjongcore/common/log"
)

// NatsPublisher ships finished episode logs to the (out-of-scope) training
// consumer over a subject, the boundary spec §1 describes without owning
// the other end. Grounded on the teacher's share.GameEvent publish path in
// runtime/game/engines/mahjong, generalized from per-seat client push to a
// single batch publish of the canonical MJAI log.
type NatsPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNatsPublisher dials url once; the connection is reused for every
// PublishEpisode call, matching the teacher's long-lived connector pattern.
func NewNatsPublisher(url, subject string) (*NatsPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("mahjongcore-selfplay"))
	if err != nil {
		return nil, err
	}
	return &NatsPublisher{conn: conn, subject: subject}, nil
}

// PublishEpisode joins the MJAI log lines with newlines and publishes the
// whole episode as one message; consumers split on "\n".
func (p *NatsPublisher) PublishEpisode(episodeID string, lines []string) error {
	payload := strings.Join(lines, "\n")
	if err := p.conn.Publish(p.subject, []byte(payload)); err != nil {
		log.Error("nats publish failed for episode %s: %v", episodeID, err)
		return err
	}
	return nil
}

// Close closes the underlying connection without draining it.
func (p *NatsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
