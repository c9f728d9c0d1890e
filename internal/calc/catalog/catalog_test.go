package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrder(t *testing.T) {
	got := List()
	require.Len(t, got, 4)
	assert.Equal(t, []Kind{KindSkirt, KindFrill, KindRatio, KindPythagorean},
		[]Kind{got[0].Kind, got[1].Kind, got[2].Kind, got[3].Kind})

	got[0].Title = "changed"
	got[0].Fields[0].Label = "changed"
	got[0].Results[0].Hint = "mm"
	fresh := List()[0]
	assert.Equal(t, "Flare Skirt Pattern Calculator", fresh.Title)
	assert.Equal(t, "Waist Size (cm)", fresh.Fields[0].Label)
	assert.Equal(t, "cm", fresh.Results[0].Hint)

	tool, ok := Lookup(KindFrill)
	require.True(t, ok)
	tool.Fields[0].Default = "1"
	tool, _ = Lookup(KindFrill)
	assert.Equal(t, "200", tool.Fields[0].Default)
}

func TestFrillDefaults(t *testing.T) {
	tool, ok := Lookup(KindFrill)
	require.True(t, ok)
	defaults := map[string]string{}
	for _, f := range tool.Fields {
		defaults[f.Name] = f.Default
	}
	assert.Equal(t, map[string]string{"arc_length": "200", "angle": "180", "width": "5"}, defaults)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("sleeve")
	assert.False(t, ok)
}

func TestHandlerGet(t *testing.T) {
	r := mux.NewRouter()
	h := &Handler{}
	r.HandleFunc("/api/tools/{kind}", h.Get).Methods("GET")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools/ratio", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var tool Tool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tool))
	assert.Equal(t, KindRatio, tool.Kind)
	assert.NotEmpty(t, tool.Example)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools/sleeve", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
