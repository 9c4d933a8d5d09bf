package store

// Fixed queries used by the repositories. Queries whose shape depends on the
// request (IN-lists, sparse patches, per-kind item columns) are built with
// squirrel instead; see the individual repositories.

const (
	createUser = `INSERT INTO users (email, password_hash, name, avatar)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, password_hash, name, avatar, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, name, avatar, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, name, avatar, created_at
    FROM users
    WHERE id = $1;`

	updateUserMeta = `UPDATE users
    SET name = $2, avatar = $3
    WHERE id = $1;`

	upsertProfile = `INSERT INTO profiles (id, email, name, avatar)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (id) DO UPDATE
    SET email = EXCLUDED.email, name = EXCLUDED.name, avatar = EXCLUDED.avatar;`

	getProfile = `SELECT id, email, name, avatar
    FROM profiles
    WHERE id = $1;`

	createCampaign = `INSERT INTO campaigns (name, description, invite_code, owner_id, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, description, invite_code, owner_id, image_url, status, created_at;`

	getCampaignByID = `SELECT id, name, description, invite_code, owner_id, image_url, status, created_at
    FROM campaigns
    WHERE id = $1;`

	getCampaignByInviteCode = `SELECT id, name, description, invite_code, owner_id, image_url, status, created_at
    FROM campaigns
    WHERE invite_code = $1;`

	deleteCampaign = `DELETE FROM campaigns
    WHERE id = $1;`

	insertMembership = `INSERT INTO memberships (user_id, campaign_id, role)
    VALUES ($1, $2, $3);`

	getMembership = `SELECT user_id, campaign_id, role
    FROM memberships
    WHERE user_id = $1 AND campaign_id = $2;`

	listMembershipsByUser = `SELECT user_id, campaign_id, role
    FROM memberships
    WHERE user_id = $1;`

	listMembershipsByCampaign = `SELECT user_id, campaign_id, role
    FROM memberships
    WHERE campaign_id = $1;`

	deleteMembership = `DELETE FROM memberships
    WHERE campaign_id = $1 AND user_id = $2;`

	countMemberships = `SELECT COUNT(*)
    FROM memberships
    WHERE campaign_id = $1;`
)
