package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_booking/model"
)

func TestFindLiveTokenRejectsUsedToken(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "077111111")

	token, err := IssueResetToken(db, user.ID, model.ResetKindOTP)
	require.NoError(t, err)

	_, err = FindLiveToken(db, user.ID, token.Token, model.ResetKindOTP)
	require.NoError(t, err)

	token.Used = true
	require.NoError(t, db.Save(token).Error)

	_, err = FindLiveToken(db, user.ID, token.Token, model.ResetKindOTP)
	assert.Error(t, err)
}

func TestFindLiveTokenRejectsExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "077222222")

	token, err := IssueResetToken(db, user.ID, model.ResetKindOTP)
	require.NoError(t, err)

	require.NoError(t, db.Model(token).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err = FindLiveToken(db, user.ID, token.Token, model.ResetKindOTP)
	assert.Error(t, err)
}

func TestInvalidatePendingTokensKeepsOnlyLatestLive(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "077333333")

	first, err := IssueResetToken(db, user.ID, model.ResetKindOTP)
	require.NoError(t, err)

	require.NoError(t, InvalidatePendingTokens(db, user.ID, model.ResetKindOTP))
	second, err := IssueResetToken(db, user.ID, model.ResetKindOTP)
	require.NoError(t, err)

	_, err = FindLiveToken(db, user.ID, first.Token, model.ResetKindOTP)
	assert.Error(t, err, "older code must stop verifying once a new one is issued")

	_, err = FindLiveToken(db, user.ID, second.Token, model.ResetKindOTP)
	assert.NoError(t, err)
}

func TestCountRecentResetRequestsWindow(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "077444444")

	for i := 0; i < 3; i++ {
		_, err := IssueResetToken(db, user.ID, model.ResetKindOTP)
		require.NoError(t, err)
	}
	// Session tokens never count against the OTP window.
	_, err := IssueResetToken(db, user.ID, model.ResetKindSession)
	require.NoError(t, err)

	count, err := CountRecentResetRequests(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Age one row out of the window, it stops counting.
	var oldest model.PasswordResetToken
	require.NoError(t, db.Where("user_id = ? AND kind = ?", user.ID, model.ResetKindOTP).
		Order("id").First(&oldest).Error)
	require.NoError(t, db.Model(&oldest).
		Update("created_at", time.Now().Add(-ResetRequestWindow-time.Minute)).Error)

	count, err = CountRecentResetRequests(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFindLiveSessionTokenSingleUse(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "077555555")

	session, err := IssueResetToken(db, user.ID, model.ResetKindSession)
	require.NoError(t, err)

	found, err := FindLiveSessionToken(db, session.Token)
	require.NoError(t, err)

	found.Used = true
	require.NoError(t, db.Save(found).Error)

	_, err = FindLiveSessionToken(db, session.Token)
	assert.Error(t, err)
}
