package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fretwise/fretwise/constants"
	"github.com/fretwise/fretwise/fretboard"
	"github.com/fretwise/fretwise/model"
	"github.com/fretwise/fretwise/theory"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const maxFrets = 36

func noteResponse(n theory.Note) model.NoteResponse {
	return model.NoteResponse{Name: n.Name, Value: n.Value}
}

func noteResponses(notes []theory.Note) []model.NoteResponse {
	res := make([]model.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = noteResponse(n)
	}
	return res
}

func chordResponse(c theory.Chord) model.ChordResponse {
	return model.ChordResponse{
		Name:  c.Name,
		Root:  noteResponse(c.Root),
		Notes: noteResponses(c.Notes()),
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func rootFromQuery(r *http.Request) (theory.Note, error) {
	name := r.URL.Query().Get("root")
	if name == "" {
		name = "C"
	}
	return theory.ParseNote(name)
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	preset := mux.Vars(r)["preset"]
	build, ok := theory.ScalePresets[preset]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown scale preset %q", preset))
		return
	}
	root, err := rootFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scale := build(root)
	writeJSON(w, model.ScaleResponse{
		Name:  scale.Name,
		Root:  noteResponse(scale.Root),
		Notes: noteResponses(scale.Notes()),
	})
}

func handleChord(w http.ResponseWriter, r *http.Request) {
	preset := mux.Vars(r)["preset"]
	build, ok := theory.ChordPresets[preset]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chord preset %q", preset))
		return
	}
	root, err := rootFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, chordResponse(build(root)))
}

func handleFretboard(w http.ResponseWriter, r *http.Request) {
	frets := constants.DefaultFrets
	if raw := r.URL.Query().Get("frets"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxFrets {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("frets must be 1-%v", maxFrets))
			return
		}
		frets = parsed
	}
	fb := fretboard.New(frets)
	res := model.FretboardResponse{Frets: frets}
	for s := 0; s < constants.NumStrings; s++ {
		row := make([]model.NoteResponse, 0, frets+1)
		for f := 0; f <= frets; f++ {
			note, err := fb.NoteAt(s, f)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			row = append(row, noteResponse(note))
		}
		res.Strings = append(res.Strings, row)
	}
	writeJSON(w, res)
}

func handleProgression(w http.ResponseWriter, r *http.Request) {
	var input model.ProgressionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}

	scaleName := input.Scale
	if scaleName == "" {
		scaleName = "major"
	}
	build, ok := theory.ScalePresets[scaleName]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown scale preset %q", scaleName))
		return
	}
	key, err := theory.ParseNote(input.Key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(input.Numerals) == 0 {
		writeError(w, http.StatusBadRequest, "numerals must not be empty")
		return
	}

	prog, err := theory.FromRomanNumerals(build(key), input.Numerals, input.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := model.ProgressionResponse{Name: prog.Name}
	for _, chord := range prog.Chords {
		res.Chords = append(res.Chords, chordResponse(chord))
	}
	writeJSON(w, res)
}

// NewHandler builds the API router. CORS is open; the API serves local
// tooling, not the public internet.
func NewHandler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scales/{preset}", handleScale).Methods("GET")
	router.HandleFunc("/chords/{preset}", handleChord).Methods("GET")
	router.HandleFunc("/fretboard", handleFretboard).Methods("GET")
	router.HandleFunc("/progressions", handleProgression).Methods("POST")
	return cors.Default().Handler(router)
}

// ListenAndServe runs the API on addr.
func ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, NewHandler())
}
