package chat

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Message roles, as the model API names them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one stored chat turn.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Family    string    `json:"family"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transcript keeps chat history in SQLite. It is safe for concurrent use
// through database/sql.
type Transcript struct {
	db *sql.DB
}

// NewTranscript opens or creates the database at dbPath.
func NewTranscript(dbPath string) (*Transcript, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	t := &Transcript{db: db}
	if err := t.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return t, nil
}

func (t *Transcript) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS chat_messages (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		family TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id, seq);
	`

	_, err := t.db.Exec(schema)
	return err
}

// NewSessionID returns a fresh session id.
func NewSessionID() string {
	return uuid.New().String()
}

// Append stores one message and returns it with its id and timestamp.
func (t *Transcript) Append(sessionID, role, family, text string) (Message, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return Message{}, fmt.Errorf("invalid session id %q: %w", sessionID, err)
	}
	msg := Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Family:    family,
		Text:      text,
		CreatedAt: time.Now(),
	}
	_, err := t.db.Exec(
		`INSERT INTO chat_messages (id, session_id, role, family, text, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.SessionID, msg.Role, msg.Family, msg.Text, msg.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Message{}, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

// History returns a session's messages in the order they were appended.
func (t *Transcript) History(sessionID string) ([]Message, error) {
	rows, err := t.db.Query(
		`SELECT id, session_id, role, family, text, created_at FROM chat_messages WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Family, &m.Text, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = time.Unix(0, createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Sessions counts the distinct sessions stored.
func (t *Transcript) Sessions() (int, error) {
	var n int
	err := t.db.QueryRow(`SELECT COUNT(DISTINCT session_id) FROM chat_messages`).Scan(&n)
	return n, err
}

func (t *Transcript) Close() error {
	return t.db.Close()
}
