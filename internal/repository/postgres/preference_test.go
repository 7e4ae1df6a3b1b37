package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"ratesbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

const loadQuery = "SELECT chat_id, base, amount, selected, msg_id, message_sent_at, recent_amounts FROM user_settings WHERE user_id = \\$1"

func TestPreferenceRepo_Load(t *testing.T) {
	sentAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		userID   int64
		rows     *sqlmock.Rows
		queryErr error
		check    func(t *testing.T, pref *domain.UserPreference)
		wantErr  bool
	}{
		{
			name:   "existing user",
			userID: 123,
			rows: sqlmock.NewRows([]string{"chat_id", "base", "amount", "selected", "msg_id", "message_sent_at", "recent_amounts"}).
				AddRow(int64(500), "USD", 10.0, "{USD,EUR}", int64(42), sentAt, "{10,1}"),
			check: func(t *testing.T, pref *domain.UserPreference) {
				assert.Equal(t, int64(500), *pref.ChatID)
				assert.Equal(t, "USD", *pref.Base)
				assert.Equal(t, 10.0, pref.Amount)
				assert.Equal(t, []string{"USD", "EUR"}, pref.Selected)
				assert.Equal(t, 42, *pref.MessageID)
				assert.True(t, pref.MessageSentAt.Equal(sentAt))
				assert.Equal(t, []float64{10, 1}, pref.RecentAmounts)
			},
		},
		{
			name:   "existing user with nullable fields empty",
			userID: 123,
			rows: sqlmock.NewRows([]string{"chat_id", "base", "amount", "selected", "msg_id", "message_sent_at", "recent_amounts"}).
				AddRow(nil, nil, 1.0, "{}", nil, nil, "{}"),
			check: func(t *testing.T, pref *domain.UserPreference) {
				assert.Nil(t, pref.ChatID)
				assert.Nil(t, pref.Base)
				assert.Equal(t, 1.0, pref.Amount)
				assert.Empty(t, pref.Selected)
				assert.Nil(t, pref.MessageID)
				assert.Nil(t, pref.MessageSentAt)
			},
		},
		{
			name:     "unknown user gets defaults",
			userID:   789,
			queryErr: sql.ErrNoRows,
			check: func(t *testing.T, pref *domain.UserPreference) {
				assert.Equal(t, int64(789), pref.UserID)
				assert.Equal(t, 1.0, pref.Amount)
				assert.Nil(t, pref.Base)
				assert.Nil(t, pref.MessageID)
			},
		},
		{
			name:     "database error",
			userID:   1,
			queryErr: fmt.Errorf("connection refused"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewPreferenceRepo(db)

			if tt.queryErr != nil {
				mock.ExpectQuery(loadQuery).WithArgs(tt.userID).WillReturnError(tt.queryErr)
			} else {
				mock.ExpectQuery(loadQuery).WithArgs(tt.userID).WillReturnRows(tt.rows)
			}

			pref, err := repo.Load(tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				tt.check(t, pref)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPreferenceRepo_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	chatID := int64(500)
	base := "USD"
	sentAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	pref := domain.NewUserPreference(123)
	pref.ChatID = &chatID
	pref.Base = &base
	pref.Amount = 10
	pref.Selected = []string{"USD", "EUR"}
	pref.SetLiveMessage(42, sentAt)
	pref.RecentAmounts = []float64{10}

	mock.ExpectExec("INSERT INTO user_settings").
		WithArgs(
			int64(123),
			&chatID,
			&base,
			10.0,
			pq.Array([]string{"USD", "EUR"}),
			sql.NullInt64{Int64: 42, Valid: true},
			pref.MessageSentAt,
			pq.Array([]float64{10}),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(pref)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_Save_DefaultRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	pref := domain.NewUserPreference(123)

	// Nil slices persist as empty arrays, absent message id as NULL
	mock.ExpectExec("INSERT INTO user_settings").
		WithArgs(
			int64(123),
			(*int64)(nil),
			(*string)(nil),
			1.0,
			pq.Array([]string{}),
			sql.NullInt64{},
			(*time.Time)(nil),
			pq.Array([]float64{}),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(pref)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_ListUserIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	mock.ExpectQuery("SELECT user_id FROM user_settings").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)).AddRow(int64(2)))

	ids, err := repo.ListUserIDs()

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
