package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fretwise/fretwise/theory"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	rootCmd.AddCommand(listenCmd)
}

// heldNotes tracks the keys currently sounding. The MIDI driver callback
// and the debounce timer run on different goroutines, so every access
// takes the mutex and values hands out a snapshot.
type heldNotes struct {
	mu    sync.Mutex
	notes map[uint8]bool
}

func newHeldNotes() *heldNotes {
	return &heldNotes{notes: make(map[uint8]bool)}
}

func (h *heldNotes) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notes[key] = true
}

func (h *heldNotes) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.notes, key)
}

func (h *heldNotes) values() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	values := make([]int, 0, len(h.notes))
	for key := range h.notes {
		values = append(values, int(key))
	}
	return values
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Identify chords played on a connected MIDI instrument",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer midi.CloseDriver()

		in, err := midi.InPort(listenPort)
		if err != nil {
			return fmt.Errorf("no MIDI input on port %v: %w", listenPort, err)
		}

		held := newHeldNotes()
		// rapid note on/off bursts while strumming settle before we identify
		debounced := debounce.New(75 * time.Millisecond)

		identify := func() {
			if name, ok := theory.IdentifyChord(held.values()); ok {
				fmt.Printf("%v\n", name)
			}
		}

		stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
			var ch, key, vel uint8
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				held.press(key)
				debounced(identify)
			case msg.GetNoteEnd(&ch, &key):
				held.release(key)
				debounced(identify)
			}
		})
		if err != nil {
			return err
		}
		defer stop()

		fmt.Printf("Listening on %v, play a chord (ctrl-c to stop)\n", in)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		return nil
	},
}
