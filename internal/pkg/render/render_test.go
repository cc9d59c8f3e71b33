package render

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/enrollment/internal/app/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/students?"+rawQuery, nil)
	return c, w
}

func sampleStudent() models.Student {
	return models.Student{
		StudentID:   1001,
		StudentName: "Ada Acar",
		YearLevel:   2,
		GPA:         3.41,
		DeptID:      3,
	}
}

func TestStudent_JSONDefault(t *testing.T) {
	t.Parallel()

	c, w := testContext(t, "")
	Student(c, http.StatusOK, sampleStudent())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))

	var body map[string]models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, sampleStudent(), body["student"])
}

func TestStudent_XMLOptIn(t *testing.T) {
	t.Parallel()

	c, w := testContext(t, "format=xml")
	Student(c, http.StatusOK, sampleStudent())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/xml"))

	body := w.Body.String()
	assert.Contains(t, body, "<student>")
	assert.Contains(t, body, "<student_name>Ada Acar</student_name>")
	assert.Contains(t, body, "<gpa>3.41</gpa>")
}

func TestStudents_EmptyListIsNotNull(t *testing.T) {
	t.Parallel()

	c, w := testContext(t, "")
	Students(c, http.StatusOK, nil)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, "[]", string(body["students"]))
}

func TestStudents_XMLRoot(t *testing.T) {
	t.Parallel()

	c, w := testContext(t, "format=xml")
	Students(c, http.StatusOK, []models.Student{sampleStudent()})

	body := w.Body.String()
	assert.Contains(t, body, "<students>")
	assert.Contains(t, body, "<student>")
	assert.Contains(t, body, "</students>")
}

func TestToken(t *testing.T) {
	t.Parallel()

	c, w := testContext(t, "")
	Token(c, http.StatusOK, "abc.def.ghi")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "abc.def.ghi", body["token"])
}

func TestMessage_HonorsFormat(t *testing.T) {
	t.Parallel()

	c, w := testContext(t, "format=xml")
	Message(c, http.StatusNotFound, "student not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/xml"))
	assert.Contains(t, w.Body.String(), "<message>student not found</message>")
}

func TestScriptResult(t *testing.T) {
	t.Parallel()

	c, w := testContext(t, "")
	ScriptResult(c, false, 2, "boom")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK       bool   `json:"ok"`
		ExitCode int    `json:"exit_code"`
		Output   string `json:"output"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, 2, body.ExitCode)
	assert.Equal(t, "boom", body.Output)
}
