package postgres

import (
	"database/sql"

	"ratesbot/internal/domain"

	"github.com/lib/pq"
)

// PreferenceRepo implements repository.PreferenceRepository
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// Load returns the stored preference for a user, or an all-defaults record
// when the user is unknown
func (r *PreferenceRepo) Load(userID int64) (*domain.UserPreference, error) {
	query := `
		SELECT chat_id, base, amount, selected, msg_id, message_sent_at, recent_amounts
		FROM user_settings
		WHERE user_id = $1
	`

	pref := domain.NewUserPreference(userID)
	var selected pq.StringArray
	var recent pq.Float64Array
	var msgID sql.NullInt64

	err := r.db.QueryRow(query, userID).Scan(
		&pref.ChatID,
		&pref.Base,
		&pref.Amount,
		&selected,
		&msgID,
		&pref.MessageSentAt,
		&recent,
	)

	if err == sql.ErrNoRows {
		return pref, nil
	}
	if err != nil {
		return nil, err
	}

	pref.Selected = []string(selected)
	pref.RecentAmounts = []float64(recent)
	if msgID.Valid {
		id := int(msgID.Int64)
		pref.MessageID = &id
	}

	return pref, nil
}

// Save upserts the preference record
func (r *PreferenceRepo) Save(pref *domain.UserPreference) error {
	query := `
		INSERT INTO user_settings (user_id, chat_id, base, amount, selected, msg_id, message_sent_at, recent_amounts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id)
		DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			base = EXCLUDED.base,
			amount = EXCLUDED.amount,
			selected = EXCLUDED.selected,
			msg_id = EXCLUDED.msg_id,
			message_sent_at = EXCLUDED.message_sent_at,
			recent_amounts = EXCLUDED.recent_amounts
	`

	var msgID sql.NullInt64
	if pref.MessageID != nil {
		msgID = sql.NullInt64{Int64: int64(*pref.MessageID), Valid: true}
	}

	selected := pref.Selected
	if selected == nil {
		selected = []string{}
	}
	recent := pref.RecentAmounts
	if recent == nil {
		recent = []float64{}
	}

	_, err := r.db.Exec(query,
		pref.UserID,
		pref.ChatID,
		pref.Base,
		pref.Amount,
		pq.Array(selected),
		msgID,
		pref.MessageSentAt,
		pq.Array(recent),
	)
	return err
}

// ListUserIDs returns all known user identifiers
func (r *PreferenceRepo) ListUserIDs() ([]int64, error) {
	query := `SELECT user_id FROM user_settings ORDER BY user_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
