package chatRepository

const (
	queryCreateSession = `
		INSERT INTO chat_sessions (
			id, created_at, last_activity
		) VALUES (
			:id, :created_at, :last_activity
		)
	`

	queryGetSessionByID = `
		SELECT
			id, created_at, last_activity
		FROM chat_sessions
		WHERE id = :id
	`

	queryTouchSession = `
		UPDATE chat_sessions
		SET last_activity = :last_activity
		WHERE id = :id
	`

	queryAppendTurn = `
		INSERT INTO chat_turns (
			id, session_id, role, kind, payload, created_at
		) VALUES (
			:id, :session_id, :role, :kind, :payload, :created_at
		)
	`

	queryListTurnsBySessionID = `
		SELECT
			id, session_id, role, kind, payload, created_at
		FROM chat_turns
		WHERE session_id = :session_id
		ORDER BY created_at ASC, id ASC
	`
)
