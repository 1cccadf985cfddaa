package leads

const (
	queryCreate = `
		INSERT INTO leads (email, name, message, source)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, name, message, source, created_at
	`

	queryList = `
		SELECT id, email, name, message, source, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryRecent = `
		SELECT id, email, name, message, source, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`

	queryCount = `
		SELECT COUNT(*) FROM leads
	`

	queryCountSince = `
		SELECT COUNT(*) FROM leads WHERE created_at >= $1
	`
)
