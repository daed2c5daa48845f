package model

type NoteResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ScaleResponse struct {
	Name  string         `json:"name"`
	Root  NoteResponse   `json:"root"`
	Notes []NoteResponse `json:"notes"`
}

type ChordResponse struct {
	Name  string         `json:"name"`
	Root  NoteResponse   `json:"root"`
	Notes []NoteResponse `json:"notes"`
}

type ProgressionRequestBody struct {
	Key      string   `json:"key"`
	Scale    string   `json:"scale"`
	Numerals []string `json:"numerals"`
	Name     string   `json:"name"`
}

type ProgressionResponse struct {
	Name   string          `json:"name"`
	Chords []ChordResponse `json:"chords"`
}

type FretboardResponse struct {
	Frets   int              `json:"frets"`
	Strings [][]NoteResponse `json:"strings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
