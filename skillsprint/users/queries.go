package users

const (
	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id, email, provider, provider_id, name, avatar_url, role, last_login, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, email, provider, provider_id, name, avatar_url, role, last_login, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	querySaveLocalCredentials = `
		INSERT INTO users (provider, provider_id, email, name, avatar_url, password_hash)
		VALUES ('local', $1, $1, $2, '', $3)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			password_hash = EXCLUDED.password_hash,
			updated_at = NOW()
		RETURNING id, email, provider, provider_id, name, avatar_url, role, last_login, created_at, updated_at
	`

	queryFindLocalByEmail = `
		SELECT id, email, provider, provider_id, name, avatar_url, role, last_login, created_at, updated_at, password_hash
		FROM users
		WHERE provider = 'local' AND provider_id = $1
	`

	queryList = `
		SELECT id, email, provider, provider_id, name, avatar_url, role, last_login, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryUpdateRole = `
		UPDATE users
		SET role = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, email, provider, provider_id, name, avatar_url, role, last_login, created_at, updated_at
	`

	queryUpdateProfile = `
		UPDATE users
		SET name = $1, avatar_url = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, email, provider, provider_id, name, avatar_url, role, last_login, created_at, updated_at
	`

	queryTouchLastLogin = `
		UPDATE users
		SET last_login = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	queryCount = `
		SELECT COUNT(*) FROM users
	`
)
