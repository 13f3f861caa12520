package messagebus_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/messagebus"
)

// The Message Bus is a thin SQL table plus a fire-and-forget publish, so
// its unit tests run against sqlmock rather than a container: the polling
// paths in particular (Query's 500ms tick) are about which statements run
// in which order, not about Postgres behavior.

func newTestBus(t *testing.T) (*messagebus.Bus, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return messagebus.New(db, bus.NewFromClient(client)), mock
}

func messageColumns() []string {
	return []string{
		"id", "org_id", "from_agent_id", "to_agent_id", "type", "subject", "content",
		"priority", "requires_response", "response_to_id", "read_at", "responded_at",
		"context", "created_at",
	}
}

func TestSend_PersistsWithDefaults(t *testing.T) {
	b, mock := newTestBus(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inter_agent_messages")).
		WithArgs(sqlmock.AnyArg(), "org-1", "agent-a", sqlmock.AnyArg(), "progress", "subj", "body",
			5, false, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg, err := b.Send(context.Background(), messagebus.SendInput{
		OrgID: "org-1", FromAgentID: "agent-a", ToAgentID: "agent-b",
		Type: "progress", Subject: "subj", Content: "body",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, msg.Priority, "unset priority defaults to 5")
	require.NotNil(t, msg.ToAgentID)
	assert.Equal(t, "agent-b", *msg.ToAgentID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlocker_UsesPriority7(t *testing.T) {
	b, mock := newTestBus(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inter_agent_messages")).
		WithArgs(sqlmock.AnyArg(), "org-1", "agent-a", sqlmock.AnyArg(), "blocker", "stuck", "help",
			7, false, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg, err := b.Blocker(context.Background(), "org-1", "agent-a", "agent-b", "stuck", "help")
	require.NoError(t, err)
	assert.Equal(t, 7, msg.Priority)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRespond_MarksOriginalResponded(t *testing.T) {
	b, mock := newTestBus(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inter_agent_messages")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE inter_agent_messages SET responded_at")).
		WithArgs(sqlmock.AnyArg(), "orig-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg, err := b.Respond(context.Background(), "org-1", "agent-b", "agent-a", "orig-1", "answer")
	require.NoError(t, err)
	require.NotNil(t, msg.ResponseToID)
	assert.Equal(t, "orig-1", *msg.ResponseToID)
	assert.Equal(t, "response", msg.Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuery_ReturnsResponseFoundOnLaterPoll(t *testing.T) {
	b, mock := newTestBus(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inter_agent_messages")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// First poll: no response yet. Second poll: the reply row exists.
	findQuery := regexp.QuoteMeta("WHERE response_to_id = $1")
	mock.ExpectQuery(findQuery).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(findQuery).WillReturnRows(
		sqlmock.NewRows(messageColumns()).AddRow(
			"reply-1", "org-1", "agent-b", "agent-a", "response", "response", "the answer",
			5, false, "sent-msg-id", nil, nil, []byte(`{}`), time.Now(),
		))

	reply, err := b.Query(context.Background(), messagebus.SendInput{
		OrgID: "org-1", FromAgentID: "agent-a", ToAgentID: "agent-b",
		Subject: "q", Content: "?",
	}, 5*time.Second)
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, "reply-1", reply.ID)
	assert.Equal(t, "the answer", reply.Content)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuery_TimesOutToNil(t *testing.T) {
	b, mock := newTestBus(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inter_agent_messages")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE response_to_id = $1")).
		WillReturnError(sql.ErrNoRows)

	reply, err := b.Query(context.Background(), messagebus.SendInput{
		OrgID: "org-1", FromAgentID: "agent-a", ToAgentID: "agent-b",
		Subject: "q", Content: "?",
	}, 0)
	require.NoError(t, err)
	assert.Nil(t, reply, "deadline already elapsed returns nil, not an error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPending_FiltersUnreadForAgent(t *testing.T) {
	b, mock := newTestBus(t)

	mock.ExpectQuery(regexp.QuoteMeta("to_agent_id = $2 AND read_at IS NULL")).
		WithArgs("org-1", "agent-b").
		WillReturnRows(sqlmock.NewRows(messageColumns()).
			AddRow("m1", "org-1", "agent-a", "agent-b", "query", "s1", "c1",
				5, true, nil, nil, nil, []byte(`{"k":"v"}`), time.Now()).
			AddRow("m2", "org-1", "agent-c", "agent-b", "progress", "s2", "c2",
				5, false, nil, nil, nil, nil, time.Now()))

	msgs, err := b.GetPending(context.Background(), "org-1", "agent-b")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "v", msgs[0].Context["k"])
	assert.Nil(t, msgs[1].Context)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	b, mock := newTestBus(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE inter_agent_messages SET read_at")).
		WithArgs(sqlmock.AnyArg(), "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, b.MarkRead(context.Background(), "m1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetConversation_OrderedWithLimit(t *testing.T) {
	b, mock := newTestBus(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
		WithArgs("org-1", "agent-a", "agent-b", 100).
		WillReturnRows(sqlmock.NewRows(messageColumns()).
			AddRow("m1", "org-1", "agent-a", "agent-b", "query", "s", "hello",
				5, true, nil, nil, nil, nil, time.Now()).
			AddRow("m2", "org-1", "agent-b", "agent-a", "response", "response", "hi",
				5, false, "m1", nil, nil, nil, time.Now()))

	msgs, err := b.GetConversation(context.Background(), "org-1", "agent-a", "agent-b", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Content)
	require.NoError(t, mock.ExpectationsWereMet())
}
