package entity

// ExportFileName is the fixed name of the plain-text export artifact.
const ExportFileName = "AI_Study_Notes.txt"

// ExportMIMEType is the content type of the export artifact.
const ExportMIMEType = "text/plain"

// StudyNotes holds the result of one notes-generation request:
// the assembled summary and its bulleted rendering.
// Neither field is persisted; the value is owned by the caller.
type StudyNotes struct {
	Summary string
	Bullets []string
}
