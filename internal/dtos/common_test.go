package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Numeric_AcceptsNumberAndString(t *testing.T) {
	var req JobCreationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"salary": 90000, "position": "2"}`), &req))

	salary, err := req.Salary.Int()
	require.NoError(t, err)
	assert.Equal(t, 90000, salary)

	position, err := req.Position.Int()
	require.NoError(t, err)
	assert.Equal(t, 2, position)

	assert.False(t, req.ExperienceLevel.Present())
}

func Test_Numeric_NonNumericFailsOnInt(t *testing.T) {
	var req JobCreationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"salary": "lots"}`), &req))
	assert.True(t, req.Salary.Present())
	_, err := req.Salary.Int()
	assert.Error(t, err)
}

func Test_StringList_WrapsBareString(t *testing.T) {
	var req JobCreationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"requirements": "golang"}`), &req))
	assert.Equal(t, StringList{"golang"}, req.Requirements)

	require.NoError(t, json.Unmarshal([]byte(`{"requirements": ["go", "sql"]}`), &req))
	assert.Equal(t, StringList{"go", "sql"}, req.Requirements)
}

func Test_StringList_AbsentStaysNil(t *testing.T) {
	var req JobUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title": "New"}`), &req))
	assert.Nil(t, req.Requirements)
}
