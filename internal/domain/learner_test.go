package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearner_Validate(t *testing.T) {
	birth := time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, NewLearner("  Sam Lee ", birth, start).Validate())
	assert.Equal(t, "Sam Lee", NewLearner("  Sam Lee ", birth, start).Name)

	err := NewLearner(" ", birth, start).Validate()
	assert.True(t, HasCode(err, CodeValidation))

	err = NewLearner("Sam", time.Time{}, start).Validate()
	assert.True(t, HasCode(err, CodeValidation))

	err = NewLearner("Sam", birth, time.Time{}).Validate()
	assert.True(t, HasCode(err, CodeValidation))
}

func TestLearner_ApplyUpdate(t *testing.T) {
	birth := time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	l := NewLearner("Sam Lee", birth, start)

	name := "  Sam Rivera "
	newStart := start.AddDate(0, 1, 0)
	l.ApplyUpdate(&name, nil, &newStart, now)
	assert.Equal(t, "Sam Rivera", l.Name)
	assert.Equal(t, birth, l.BirthDate)
	assert.Equal(t, newStart, l.StartDate)
	assert.Equal(t, now, l.UpdatedAt)

	blank := ""
	l.ApplyUpdate(&blank, nil, nil, now)
	assert.True(t, HasCode(l.Validate(), CodeValidation))
}

func TestTrainingTask_ApplyProgress(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	task := &TrainingTask{ID: "t1", Status: TaskNotStarted}

	task.ApplyProgress(TaskCompleted, "smooth", "well done", now)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)
	assert.Equal(t, "smooth", task.Notes)
	assert.Equal(t, "well done", task.Feedback)

	later := now.Add(time.Hour)
	task.ApplyProgress(TaskInProgress, "needs work", "", later)
	assert.Nil(t, task.CompletedAt)
	assert.Equal(t, later, task.UpdatedAt)
}

func TestTrainingPhase_CompletedCount(t *testing.T) {
	phase := &TrainingPhase{Tasks: []*TrainingTask{
		{Status: TaskCompleted},
		{Status: TaskInProgress},
		{Status: TaskCompleted},
	}}
	assert.Equal(t, 2, phase.CompletedCount())
}

func TestTaskStatus_Valid(t *testing.T) {
	assert.True(t, TaskInProgress.Valid())
	assert.False(t, TaskStatus("done").Valid())
}
