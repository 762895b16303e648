// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"daycare/internal/pet"
	"daycare/internal/task"
)

const (
	// RoomSeparator is the separator line around a pet room header.
	RoomSeparator = "------------"
)

// FormatTask formats a checklist line.
// Format: "{N:>4}  [x] {DESCRIPTION}  ({ID})\n"
func FormatTask(w io.Writer, num int, t task.Task) {
	box := "[ ]"
	if t.Done() {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s  (%s)\n", num, box, normalizeTitle(t.Description), t.ID)
}

// FormatRoomHeader formats the header shown when entering a pet room.
func FormatRoomHeader(w io.Writer, p pet.Profile) {
	fmt.Fprintln(w, RoomSeparator)
	fmt.Fprintf(w, "%s [%s] %s\n", displayName(p), p.ID, statusText(p.Status))
	fmt.Fprintln(w, RoomSeparator)
}

// FormatPet formats a pet line for the pets listing.
// Format: "{ID}  {NAME}  {MOOD} ({STATUS}/5)[  event done]\n"
func FormatPet(w io.Writer, p pet.Profile) {
	line := fmt.Sprintf("%s  %s  %s", p.ID, displayName(p), statusText(p.Status))
	if p.EventFlag {
		line += "  event done"
	}
	fmt.Fprintln(w, line)
}

// FormatStatus formats the one-line mood summary printed after a change.
func FormatStatus(w io.Writer, p pet.Profile) {
	fmt.Fprintf(w, "%s is %s\n", normalizeTitle(p.Name), statusText(p.Status))
}

// FormatEvent formats the outcome of an event.
func FormatEvent(w io.Writer, p pet.Profile, res pet.EventResult) {
	if res.AlreadyAttended {
		fmt.Fprintf(w, "%s attended an event today already.\n", normalizeTitle(p.Name))
		return
	}
	fmt.Fprintln(w, res.Prompt)
	switch {
	case res.Delta > 0:
		fmt.Fprintln(w, "(mood increased)")
	case res.Delta < 0:
		fmt.Fprintln(w, "(mood decreased)")
	default:
		fmt.Fprintln(w, "(mood unchanged)")
	}
}

func statusText(status int) string {
	return fmt.Sprintf("%s (%d/%d)", pet.Mood(status), status, pet.MaxStatus)
}

func displayName(p pet.Profile) string {
	name := normalizeTitle(p.Name)
	if p.Species != "" {
		name += " the " + p.Species
	}
	return name
}

// normalizeTitle normalizes free text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
