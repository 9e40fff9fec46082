package project_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stonefisk/reforma/pkg/models"
	"github.com/stonefisk/reforma/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSaveDebounceCoalesces() {
	store := &fakeStore{doc: models.DefaultDocument("Reforma Teste", decimal.NewFromInt(50000))}
	manager := project.New(store, &fakeFiles{}, project.WithSaveDelay(20*time.Millisecond))
	defer manager.Close()

	// A burst of mutations within the window must result in a single
	// write carrying the final state.
	manager.AddTask(project.TaskEditable{Title: "Pintura"})
	manager.AddTask(project.TaskEditable{Title: "Elétrica"})
	manager.AddTask(project.TaskEditable{Title: "Hidráulica"})

	assert.Eventually(suite.T(), func() bool {
		return store.saveCount() == 1
	}, time.Second, 5*time.Millisecond)

	assert.Len(suite.T(), store.saved().Tasks, 3)

	// The window has elapsed, so another mutation schedules a fresh write.
	manager.AddTask(project.TaskEditable{Title: "Acabamento"})

	assert.Eventually(suite.T(), func() bool {
		return store.saveCount() == 2
	}, time.Second, 5*time.Millisecond)
}

func (suite *TestSuiteStandard) TestFlushWritesImmediately() {
	suite.manager.AddTask(project.TaskEditable{Title: "Gesso"})
	assert.Equal(suite.T(), 0, suite.store.saveCount(), "save is still pending")

	suite.manager.Flush()

	require.Equal(suite.T(), 1, suite.store.saveCount())
	assert.Len(suite.T(), suite.store.saved().Tasks, 1)
}

func (suite *TestSuiteStandard) TestFailedSaveIsReported() {
	suite.store.failSave = true

	suite.manager.AddTask(project.TaskEditable{Title: "Pintura"})
	suite.manager.Flush()

	require.NotEmpty(suite.T(), suite.reported)
	assert.ErrorIs(suite.T(), suite.reported[0], errStoreBroken)

	// The in-memory document is untouched by the failure and the next
	// flush retries the write.
	assert.Len(suite.T(), suite.manager.Document().Tasks, 1)

	suite.store.failSave = false
	suite.reported = nil
	suite.manager.Flush()

	assert.Equal(suite.T(), 1, suite.store.saveCount())
	assert.Empty(suite.T(), suite.reported)
}

func (suite *TestSuiteStandard) TestCloseFlushesPendingState() {
	store := &fakeStore{doc: models.DefaultDocument("Reforma Teste", decimal.NewFromInt(50000))}
	manager := project.New(store, &fakeFiles{}, project.WithSaveDelay(time.Hour))

	manager.AddTask(project.TaskEditable{Title: "Entrega"})
	manager.Close()

	require.Equal(suite.T(), 1, store.saveCount())
	assert.Len(suite.T(), store.saved().Tasks, 1)

	// After Close the document stays readable but mutations no longer
	// schedule writes.
	manager.AddTask(project.TaskEditable{Title: "Extra"})
	time.Sleep(10 * time.Millisecond)
	assert.Equal(suite.T(), 1, store.saveCount())
	assert.Len(suite.T(), manager.Document().Tasks, 2)
}
