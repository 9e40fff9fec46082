package project_test

import (
	"github.com/shopspring/decimal"
	"github.com/stonefisk/reforma/internal/types"
	"github.com/stonefisk/reforma/pkg/models"
	"github.com/stonefisk/reforma/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAssetCRUD() {
	asset := suite.createTestAsset(project.AssetEditable{Name: "Geladeira", SupplierID: "s1"})
	assert.Equal(suite.T(), models.AssetStatusPurchased, asset.Status, "status defaults to Purchased")

	name := "Geladeira Inox"
	status := models.AssetStatusDelivered
	suite.manager.UpdateAsset(asset.ID, project.AssetUpdate{Name: &name, Status: &status})

	got, ok := suite.manager.Document().Asset(asset.ID)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "Geladeira Inox", got.Name)
	assert.Equal(suite.T(), models.AssetStatusDelivered, got.Status)
	assert.Equal(suite.T(), "s1", got.SupplierID)

	suite.manager.DeleteAsset(asset.ID)
	_, ok = suite.manager.Document().Asset(asset.ID)
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestToggleAssetStatus() {
	asset := suite.createTestAsset(project.AssetEditable{Name: "Fogão"})

	suite.manager.ToggleAssetStatus(asset.ID)
	got, _ := suite.manager.Document().Asset(asset.ID)
	assert.Equal(suite.T(), models.AssetStatusDelivered, got.Status)

	suite.manager.ToggleAssetStatus(asset.ID)
	got, _ = suite.manager.Document().Asset(asset.ID)
	assert.Equal(suite.T(), models.AssetStatusPurchased, got.Status)

	// Unknown IDs are a no-op.
	suite.manager.ToggleAssetStatus("does-not-exist")
	assert.Len(suite.T(), suite.manager.Document().Assets, 1)
}

func (suite *TestSuiteStandard) TestTaskCRUD() {
	task := suite.createTestTask(project.TaskEditable{
		Title:     "Demolir parede",
		StartDate: types.NewDate(2025, 3, 1),
		EndDate:   types.NewDate(2025, 3, 5),
		Category:  "Demolição",
	})
	assert.Equal(suite.T(), models.TaskStatusPending, task.Status, "status defaults to Pending")

	status := models.TaskStatusInProgress
	end := types.NewDate(2025, 3, 8)
	suite.manager.UpdateTask(task.ID, project.TaskUpdate{Status: &status, EndDate: &end})

	doc := suite.manager.Document()
	require.Len(suite.T(), doc.Tasks, 1)
	assert.Equal(suite.T(), models.TaskStatusInProgress, doc.Tasks[0].Status)
	assert.True(suite.T(), doc.Tasks[0].EndDate.Equal(end))
	assert.Equal(suite.T(), "Demolir parede", doc.Tasks[0].Title)

	suite.manager.DeleteTask(task.ID)
	assert.Empty(suite.T(), suite.manager.Document().Tasks)
}

func (suite *TestSuiteStandard) TestSupplierCRUD() {
	supplier := suite.createTestSupplier(project.SupplierEditable{
		Name:     "Vidraçaria Central",
		Phone1:   "11 98888-7777",
		Category: "Vidraçaria",
		Rating:   4,
	})

	rating := 5
	notes := "entrega rápida"
	suite.manager.UpdateSupplier(supplier.ID, project.SupplierUpdate{Rating: &rating, Notes: &notes})

	got, ok := suite.manager.Document().Supplier(supplier.ID)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), 5, got.Rating)
	assert.Equal(suite.T(), "entrega rápida", got.Notes)
	assert.Equal(suite.T(), "Vidraçaria Central", got.Name)

	suite.manager.DeleteSupplier(supplier.ID)
	_, ok = suite.manager.Document().Supplier(supplier.ID)
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestDeleteSupplierKeepsReferences() {
	supplier := suite.createTestSupplier(project.SupplierEditable{Name: "Elétrica Ltda"})

	created := suite.createTestExpense(project.ExpenseEditable{
		Amount:     decimal.NewFromInt(100),
		SupplierID: supplier.ID,
	}, 1)

	suite.manager.DeleteSupplier(supplier.ID)

	// The reference dangles on purpose: no cascade, resolution falls
	// back to the unknown-supplier default.
	doc := suite.manager.Document()
	expense, _ := doc.Expense(created[0].ID)
	assert.Equal(suite.T(), supplier.ID, expense.SupplierID)
	assert.Equal(suite.T(), models.UnknownSupplierName, doc.SupplierName(expense.SupplierID))
}

func (suite *TestSuiteStandard) TestProgressNotes() {
	first := suite.manager.AddProgressNote("fundação pronta")
	second := suite.manager.AddProgressNote("alvenaria iniciada")

	assert.NotEmpty(suite.T(), first.ID)
	assert.NotEqual(suite.T(), first.ID, second.ID)

	doc := suite.manager.Document()
	require.Len(suite.T(), doc.ProgressLog, 2)
	assert.Equal(suite.T(), second.ID, doc.ProgressLog[0].ID, "the journal is newest first")
	assert.Equal(suite.T(), first.ID, doc.ProgressLog[1].ID)

	suite.manager.UpdateProgressNote(first.ID, "fundação pronta e curada")
	doc = suite.manager.Document()
	assert.Equal(suite.T(), "fundação pronta e curada", doc.ProgressLog[1].Note)

	suite.manager.DeleteProgressNote(second.ID)
	doc = suite.manager.Document()
	require.Len(suite.T(), doc.ProgressLog, 1)
	assert.Equal(suite.T(), first.ID, doc.ProgressLog[0].ID)
}

func (suite *TestSuiteStandard) TestProgressNoteUnknownIDIsNoop() {
	suite.manager.AddProgressNote("única entrada")

	suite.manager.UpdateProgressNote("missing", "novo texto")
	suite.manager.DeleteProgressNote("missing")

	doc := suite.manager.Document()
	require.Len(suite.T(), doc.ProgressLog, 1)
	assert.Equal(suite.T(), "única entrada", doc.ProgressLog[0].Note)
}
