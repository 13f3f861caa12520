// Package messagebus implements the Message Bus (C6): the inter-agent
// send/respond/query primitive that is both transport and audit. Grounded
// on the teacher's raw-SQL row-scan idiom (pkg/services uses ent for its
// own tables, but original_source's message_bus.py is itself a thin SQL
// table over a relational store, so this package talks to
// inter_agent_messages directly via database/sql rather than ent) and on
// pkg/bus for the pub/sub fan-out.
package messagebus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	"github.com/sibyl-run/sibyl/pkg/sqlmodels"
)

const pubsubChannel = "inter_agent_message"

// Bus is the Message Bus component. The name collides conceptually with
// pkg/bus.Bus (the K/V+pub/sub substrate it's built on) but matches the
// component's name in spec.md §4.6.
type Bus struct {
	db  *sql.DB
	pub bus.Bus
}

// New constructs a Message Bus over a raw SQL connection and the shared
// pub/sub substrate.
func New(db *sql.DB, pub bus.Bus) *Bus {
	return &Bus{db: db, pub: pub}
}

// SendInput describes a new InterAgentMessage.
type SendInput struct {
	OrgID            string
	FromAgentID      string
	ToAgentID        string
	Type             string
	Subject          string
	Content          string
	Priority         int
	RequiresResponse bool
	Context          map[string]any
}

// Send persists the message and publishes a fan-out event scoped by org.
func (b *Bus) Send(ctx context.Context, in SendInput) (*sqlmodels.InterAgentMessage, error) {
	if in.Priority == 0 {
		in.Priority = 5
	}
	msg := &sqlmodels.InterAgentMessage{
		ID:               uuid.New().String(),
		OrgID:            in.OrgID,
		FromAgentID:      in.FromAgentID,
		Type:             in.Type,
		Subject:          in.Subject,
		Content:          in.Content,
		Priority:         in.Priority,
		RequiresResponse: in.RequiresResponse,
		Context:          in.Context,
		CreatedAt:        time.Now(),
	}
	if in.ToAgentID != "" {
		msg.ToAgentID = &in.ToAgentID
	}

	if err := b.insert(ctx, msg); err != nil {
		return nil, err
	}
	b.publish(ctx, msg)
	return msg, nil
}

// Progress sends a low-priority status update; no response expected.
func (b *Bus) Progress(ctx context.Context, orgID, from, to, subject, content string) (*sqlmodels.InterAgentMessage, error) {
	return b.Send(ctx, SendInput{OrgID: orgID, FromAgentID: from, ToAgentID: to, Type: "progress", Subject: subject, Content: content, Priority: 5})
}

// Blocker sends a high-priority (7) notice that the sender is stuck.
func (b *Bus) Blocker(ctx context.Context, orgID, from, to, subject, content string) (*sqlmodels.InterAgentMessage, error) {
	return b.Send(ctx, SendInput{OrgID: orgID, FromAgentID: from, ToAgentID: to, Type: "blocker", Subject: subject, Content: content, Priority: 7})
}

// QuerySend sends a message that requires a response (priority 5).
func (b *Bus) QuerySend(ctx context.Context, orgID, from, to, subject, content string) (*sqlmodels.InterAgentMessage, error) {
	return b.Send(ctx, SendInput{OrgID: orgID, FromAgentID: from, ToAgentID: to, Type: "query", Subject: subject, Content: content, Priority: 5, RequiresResponse: true})
}

// Delegation hands a unit of work to another agent.
func (b *Bus) Delegation(ctx context.Context, orgID, from, to, subject, content string) (*sqlmodels.InterAgentMessage, error) {
	return b.Send(ctx, SendInput{OrgID: orgID, FromAgentID: from, ToAgentID: to, Type: "delegation", Subject: subject, Content: content, Priority: 5, RequiresResponse: true})
}

// ReviewRequest asks a reviewer agent to evaluate work.
func (b *Bus) ReviewRequest(ctx context.Context, orgID, from, to, subject, content string) (*sqlmodels.InterAgentMessage, error) {
	return b.Send(ctx, SendInput{OrgID: orgID, FromAgentID: from, ToAgentID: to, Type: "review_request", Subject: subject, Content: content, Priority: 5, RequiresResponse: true})
}

// Respond creates a second row referencing responseToID, marks the
// original responded, and publishes the response event.
func (b *Bus) Respond(ctx context.Context, orgID, from, to, responseToID, content string) (*sqlmodels.InterAgentMessage, error) {
	msg := &sqlmodels.InterAgentMessage{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		FromAgentID:  from,
		ToAgentID:    &to,
		Type:         "response",
		Subject:      "response",
		Content:      content,
		Priority:     5,
		ResponseToID: &responseToID,
		CreatedAt:    time.Now(),
	}
	if err := b.insert(ctx, msg); err != nil {
		return nil, err
	}

	now := time.Now()
	if _, err := b.db.ExecContext(ctx,
		`UPDATE inter_agent_messages SET responded_at = $1 WHERE id = $2`, now, responseToID,
	); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "mark original responded failed", err)
	}

	b.publish(ctx, msg)
	return msg, nil
}

// GetPending returns unread messages addressed to agentID.
func (b *Bus) GetPending(ctx context.Context, orgID, agentID string) ([]*sqlmodels.InterAgentMessage, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, org_id, from_agent_id, to_agent_id, type, subject, content, priority,
		       requires_response, response_to_id, read_at, responded_at, context, created_at
		FROM inter_agent_messages
		WHERE org_id = $1 AND to_agent_id = $2 AND read_at IS NULL
		ORDER BY created_at ASC`, orgID, agentID)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "get_pending query failed", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

// MarkRead sets read_at on a message.
func (b *Bus) MarkRead(ctx context.Context, id string) error {
	_, err := b.db.ExecContext(ctx, `UPDATE inter_agent_messages SET read_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "mark_read failed", err)
	}
	return nil
}

// GetConversation returns every message between agents a and b, ordered
// chronologically.
func (b *Bus) GetConversation(ctx context.Context, orgID, a, bAgent string, limit int) ([]*sqlmodels.InterAgentMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, org_id, from_agent_id, to_agent_id, type, subject, content, priority,
		       requires_response, response_to_id, read_at, responded_at, context, created_at
		FROM inter_agent_messages
		WHERE org_id = $1 AND
		      ((from_agent_id = $2 AND to_agent_id = $3) OR (from_agent_id = $3 AND to_agent_id = $2))
		ORDER BY created_at ASC
		LIMIT $4`, orgID, a, bAgent, limit)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "get_conversation query failed", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

// Query sends a requires-response message then polls for a reply every
// 500ms until timeout elapses, per spec.md §4.6's "polling is chosen over
// pub/sub here for simplicity of after-restart semantics".
func (b *Bus) Query(ctx context.Context, in SendInput, timeout time.Duration) (*sqlmodels.InterAgentMessage, error) {
	in.RequiresResponse = true
	if in.Type == "" {
		in.Type = "query"
	}
	sent, err := b.Send(ctx, in)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		reply, err := b.findResponse(ctx, sent.ID)
		if err != nil {
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
		if time.Now().After(deadline) {
			return nil, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (b *Bus) findResponse(ctx context.Context, responseToID string) (*sqlmodels.InterAgentMessage, error) {
	row := b.db.QueryRowContext(ctx, `
		SELECT id, org_id, from_agent_id, to_agent_id, type, subject, content, priority,
		       requires_response, response_to_id, read_at, responded_at, context, created_at
		FROM inter_agent_messages
		WHERE response_to_id = $1
		ORDER BY created_at ASC
		LIMIT 1`, responseToID)
	msg, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "find response failed", err)
	}
	return msg, nil
}

func (b *Bus) insert(ctx context.Context, msg *sqlmodels.InterAgentMessage) error {
	ctxJSON, err := json.Marshal(msg.Context)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "marshal context failed", err)
	}
	_, err = b.db.ExecContext(ctx, `
		INSERT INTO inter_agent_messages
		(id, org_id, from_agent_id, to_agent_id, type, subject, content, priority,
		 requires_response, response_to_id, context, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		msg.ID, msg.OrgID, msg.FromAgentID, msg.ToAgentID, msg.Type, msg.Subject, msg.Content,
		msg.Priority, msg.RequiresResponse, msg.ResponseToID, ctxJSON, msg.CreatedAt)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "insert inter_agent_message failed", err)
	}
	return nil
}

// publish is fire-and-forget per spec.md §4.8: a pub/sub failure never
// fails the send.
func (b *Bus) publish(ctx context.Context, msg *sqlmodels.InterAgentMessage) {
	payload, err := json.Marshal(map[string]any{
		"id":      msg.ID,
		"org_id":  msg.OrgID,
		"from":    msg.FromAgentID,
		"to":      msg.ToAgentID,
		"type":    msg.Type,
		"subject": msg.Subject,
	})
	if err != nil {
		return
	}
	_ = b.pub.Publish(ctx, pubsubChannel, string(payload))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (*sqlmodels.InterAgentMessage, error) {
	var m sqlmodels.InterAgentMessage
	var ctxJSON []byte
	err := row.Scan(&m.ID, &m.OrgID, &m.FromAgentID, &m.ToAgentID, &m.Type, &m.Subject, &m.Content,
		&m.Priority, &m.RequiresResponse, &m.ResponseToID, &m.ReadAt, &m.RespondedAt, &ctxJSON, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(ctxJSON) > 0 {
		if err := json.Unmarshal(ctxJSON, &m.Context); err != nil {
			return nil, fmt.Errorf("unmarshal context: %w", err)
		}
	}
	return &m, nil
}

func scanMessages(rows *sql.Rows) ([]*sqlmodels.InterAgentMessage, error) {
	var out []*sqlmodels.InterAgentMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "scan inter_agent_message failed", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "rows iteration failed", err)
	}
	return out, nil
}
