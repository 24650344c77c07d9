package services

import (
	"testing"

	"github.com/prateeksteaparty/vital-wellness/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFeedbackFirstWriteWins(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewFeedbackService(db)

	first, err := svc.RecordFeedback(user.ID, "Vitamin D", true)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, 10, first.Adjustment)

	// A contradicting second submission is reported, not recorded.
	second, err := svc.RecordFeedback(user.ID, "Vitamin D", false)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, 10, second.Adjustment)

	var rows []models.Feedback
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Worked)
	assert.Equal(t, 10, rows[0].ScoreAdjustment)
}

func TestRecordFeedbackNegativeAdjustment(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewFeedbackService(db)

	res, err := svc.RecordFeedback(user.ID, "Magnesium", false)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, -5, res.Adjustment)
}

func TestRecordFeedbackMirrorsOntoSavedRecommendation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	saves := NewSaveService(db, nil)
	svc := NewFeedbackService(db)

	_, err := saves.RecordSave(user.ID, SaveInput{NutrientName: "Vitamin D"})
	require.NoError(t, err)

	_, err = svc.RecordFeedback(user.ID, "Vitamin D", true)
	require.NoError(t, err)

	var rec models.SavedRecommendation
	require.NoError(t, db.Where("user_id = ? AND nutrient_name = ?", user.ID, "Vitamin D").
		First(&rec).Error)
	require.NotNil(t, rec.Feedback)
	assert.Equal(t, models.FeedbackWorked, *rec.Feedback)
	assert.NotNil(t, rec.FeedbackAt)
}

func TestRecordFeedbackWithoutSavedRecommendation(t *testing.T) {
	// The mirror is best effort; feedback on a nutrient the user never saved
	// still records fine.
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewFeedbackService(db)

	res, err := svc.RecordFeedback(user.ID, "Selenium", true)
	require.NoError(t, err)
	assert.True(t, res.Created)
}

func TestRecordFeedbackValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)

	_, err := svc.RecordFeedback(0, "Iron", true)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.RecordFeedback(1, "", true)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestListFeedbackProjection(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewFeedbackService(db)

	_, err := svc.RecordFeedback(user.ID, "Vitamin D", true)
	require.NoError(t, err)
	_, err = svc.RecordFeedback(user.ID, "Iron", false)
	require.NoError(t, err)

	views, err := svc.ListFeedback(user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byName := map[string]FeedbackView{}
	for _, v := range views {
		byName[v.NutrientName] = v
	}
	assert.Equal(t, 10, byName["Vitamin D"].ScoreAdjustment)
	assert.True(t, byName["Vitamin D"].Worked)
	assert.Equal(t, -5, byName["Iron"].ScoreAdjustment)
	assert.False(t, byName["Iron"].Worked)
}
