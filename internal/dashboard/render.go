package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// displayTimeLayout Last Update 표시 형식 (로컬 시간)
const displayTimeLayout = "1/2/2006, 3:04:05 PM"

// Render 현재 상태를 w에 출력합니다.
func (d *Dashboard) Render(w io.Writer) error {
	return Render(w, d.State(), d.backendPort)
}

// Render 상태에 따라 로딩, 에러, 데이터 화면 중 하나를 w에 출력합니다.
// backendPort는 에러 화면의 안내 문구에 사용됩니다.
func Render(w io.Writer, s State, backendPort string) error {
	var b strings.Builder

	b.WriteString("Dashboard\n=========\n\n")

	switch {
	case s.Phase == PhaseError:
		fmt.Fprintf(&b, "Error: %s\n", s.Err)
		fmt.Fprintf(&b, "Make sure the backend is running on port %s\n", backendPort)

	case s.Phase == PhaseSuccess && s.Snapshot != nil:
		renderHealth(&b, s.Snapshot)

	default:
		b.WriteString("Loading...\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderHealth(b *strings.Builder, snapshot *Snapshot) {
	h := snapshot.Health

	status := h.Status
	if status == "" {
		status = "Unknown"
	}

	database := "Disconnected"
	if h.Database != nil && h.Database.Connected {
		database = "Connected"
	}

	fmt.Fprintf(b, "%-12s %s\n", "Status", status)
	fmt.Fprintf(b, "%-12s %s seconds\n", "Uptime", strconv.FormatFloat(h.Uptime, 'f', -1, 64))
	fmt.Fprintf(b, "%-12s %s\n", "Database", database)
	fmt.Fprintf(b, "%-12s %s\n", "Last Update", formatLocalTime(h.Timestamp))

	if m := h.Memory; m != nil {
		b.WriteString("\nMemory Usage\n")
		fmt.Fprintf(b, "  %-11s %s\n", "Heap Used", m.HeapUsed)
		fmt.Fprintf(b, "  %-11s %s\n", "Heap Total", m.HeapTotal)
		fmt.Fprintf(b, "  %-11s %s\n", "External", m.External)
	}

	b.WriteString("\nRaw Response\n")
	b.WriteString(indentJSON(snapshot.Raw))
	b.WriteString("\n")
}

// formatLocalTime 서버 timestamp를 로컬 시간으로 변환합니다. 해석할 수 없으면 "Invalid Date"를 반환합니다.
func formatLocalTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return "Invalid Date"
	}
	return t.Local().Format(displayTimeLayout)
}

func indentJSON(raw []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
