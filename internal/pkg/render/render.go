// Package render is the response formatter: it serializes result payloads as
// JSON (default) or XML (opt-in via the "format" query parameter), setting the
// matching content type. XML payloads are wrapped under fixed root elements.
package render

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okan/enrollment/internal/app/models"
)

// FormatQueryParam is the query parameter that switches the response format.
const FormatQueryParam = "format"

// WantsXML reports whether the request opted into XML responses.
func WantsXML(c *gin.Context) bool {
	return c.Query(FormatQueryParam) == "xml"
}

type studentXML struct {
	XMLName     xml.Name `xml:"student"`
	StudentID   int64    `xml:"student_id"`
	StudentName string   `xml:"student_name"`
	YearLevel   int      `xml:"year_level"`
	GPA         float64  `xml:"gpa"`
	DeptID      int64    `xml:"dept_id"`
}

type studentListXML struct {
	XMLName  xml.Name     `xml:"students"`
	Students []studentXML `xml:"student"`
}

type responseXML struct {
	XMLName xml.Name `xml:"response"`
	Token   string   `xml:"token,omitempty"`
	Message string   `xml:"message,omitempty"`
}

type scriptResultXML struct {
	XMLName  xml.Name `xml:"response"`
	OK       bool     `xml:"ok"`
	ExitCode int      `xml:"exit_code"`
	Output   string   `xml:"output"`
}

func toStudentXML(s models.Student) studentXML {
	return studentXML{
		StudentID:   s.StudentID,
		StudentName: s.StudentName,
		YearLevel:   s.YearLevel,
		GPA:         s.GPA,
		DeptID:      s.DeptID,
	}
}

// Student writes a single student record wrapped in a "student" envelope.
func Student(c *gin.Context, status int, s models.Student) {
	if WantsXML(c) {
		c.XML(status, toStudentXML(s))
		return
	}
	c.JSON(status, gin.H{"student": s})
}

// Students writes a (possibly empty) list wrapped in a "students" envelope.
func Students(c *gin.Context, status int, list []models.Student) {
	if WantsXML(c) {
		doc := studentListXML{Students: make([]studentXML, 0, len(list))}
		for _, s := range list {
			doc.Students = append(doc.Students, toStudentXML(s))
		}
		c.XML(status, doc)
		return
	}
	if list == nil {
		list = []models.Student{}
	}
	c.JSON(status, gin.H{"students": list})
}

// Token writes a freshly issued bearer token.
func Token(c *gin.Context, status int, token string) {
	if WantsXML(c) {
		c.XML(status, responseXML{Token: token})
		return
	}
	c.JSON(status, gin.H{"token": token})
}

// Message writes a plain message body. Error responses go through here too, so
// they honor the caller's format preference.
func Message(c *gin.Context, status int, message string) {
	if WantsXML(c) {
		c.XML(status, responseXML{Message: message})
		return
	}
	c.JSON(status, gin.H{"message": message})
}

// AbortMessage writes a message body and stops the handler chain.
func AbortMessage(c *gin.Context, status int, message string) {
	Message(c, status, message)
	c.Abort()
}

// ScriptResult writes the outcome of an admin script run.
func ScriptResult(c *gin.Context, ok bool, exitCode int, output string) {
	if WantsXML(c) {
		c.XML(http.StatusOK, scriptResultXML{OK: ok, ExitCode: exitCode, Output: output})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": ok, "exit_code": exitCode, "output": output})
}
