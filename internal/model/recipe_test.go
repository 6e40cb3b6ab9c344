package model

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStringArrayValue(t *testing.T) {
	v, err := StringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringArray{"flour", "water"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["flour","water"]`, string(v.([]byte)))
}

func TestStringArrayScan(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan([]byte(`["flour","water"]`)))
	assert.Equal(t, StringArray{"flour", "water"}, a)

	var b StringArray
	require.NoError(t, b.Scan(`["salt"]`))
	assert.Equal(t, StringArray{"salt"}, b)

	var c StringArray
	require.NoError(t, c.Scan(nil))
	assert.Equal(t, StringArray{}, c)
}

func TestIsValidType(t *testing.T) {
	assert.True(t, IsValidType(TypeFood))
	assert.True(t, IsValidType(TypeDrink))
	assert.False(t, IsValidType("snack"))
	assert.False(t, IsValidType(""))
	assert.False(t, IsValidType("Food"))
}

func TestRecipeBeforeCreate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Recipe{}))

	recipe := Recipe{
		Name:      "Mint Tea",
		Cuisine:   "Morocco",
		Continent: "Africa",
		Type:      TypeDrink,
	}
	require.NoError(t, db.Create(&recipe).Error)

	// id assigned once on create, defaults filled
	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, StringArray{}, recipe.Ingredients)

	var loaded Recipe
	require.NoError(t, db.First(&loaded, "id = ?", recipe.ID).Error)
	assert.Equal(t, recipe.ID, loaded.ID)
	assert.Equal(t, StringArray{}, loaded.Ingredients)

	// ids are store-assigned: a caller-supplied id is replaced
	supplied := uuid.New()
	second := Recipe{
		ID:        supplied,
		Name:      "Borscht",
		Cuisine:   "Ukraine",
		Continent: "Europe",
		Type:      TypeFood,
	}
	require.NoError(t, db.Create(&second).Error)
	assert.NotEqual(t, supplied, second.ID)
	assert.NotEqual(t, uuid.Nil, second.ID)
}

func TestRecipeCreateRejectsInvalidDrafts(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Recipe{}))

	// enforcement lives in the store layer, not just the HTTP binding
	invalid := []Recipe{
		{Cuisine: "Italy", Continent: "Europe", Type: TypeFood},
		{Name: "Mystery", Cuisine: "Italy", Continent: "Europe", Type: "snack"},
	}
	for _, recipe := range invalid {
		r := recipe
		err := db.Create(&r).Error
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	}

	var count int64
	require.NoError(t, db.Model(&Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "type", Message: "must be food or drink"}
	assert.Equal(t, "type: must be food or drink", err.Error())
}
