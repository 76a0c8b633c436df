package membership

import (
	"context"
	"database/sql"
)

const (
	StatusActive = "active"
	StatusBanned = "banned"
	StatusLeft   = "left"
)

type MembershipRepoSQL struct {
	db *sql.DB
}

func NewMembershipRepoSQL(db *sql.DB) *MembershipRepoSQL {
	return &MembershipRepoSQL{db: db}
}

// IsActiveMember reports whether the user currently holds an active
// membership in the community. Unknown users and communities are simply not
// members.
func (repo *MembershipRepoSQL) IsActiveMember(ctx context.Context, userID int64, communityID string) (bool, error) {
	query := "SELECT `status` FROM memberships WHERE user_id = ? AND community_id = ?"
	r := repo.db.QueryRowContext(ctx, query, userID, communityID)

	var status string
	err := r.Scan(&status)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return status == StatusActive, nil
}

func (repo *MembershipRepoSQL) Join(ctx context.Context, userID int64, communityID string) error {
	query := "INSERT INTO memberships (`user_id`, `community_id`, `status`) VALUES (?, ?, ?) " +
		"ON DUPLICATE KEY UPDATE `status` = ?"
	_, err := repo.db.ExecContext(ctx, query, userID, communityID, StatusActive, StatusActive)

	return err
}

func (repo *MembershipRepoSQL) Leave(ctx context.Context, userID int64, communityID string) (bool, error) {
	query := "UPDATE memberships SET `status` = ? WHERE user_id = ? AND community_id = ? AND `status` = ?"
	r, err := repo.db.ExecContext(ctx, query, StatusLeft, userID, communityID, StatusActive)
	if err != nil {
		return false, err
	}

	affected, err := r.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
