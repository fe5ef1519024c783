package version

import (
	"fmt"
	"time"
)

// Name попадает в /version и в стартовую строку лога.
const Name = "ancestor-server"

// Заполняются через -ldflags при сборке; в локальной сборке пустые.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Эпоха проекта: номер сборки - число дней от этой даты.
var buildEpoch = time.Date(
	2025, time.December, 4,
	0, 0, 0, 0,
	time.UTC,
)

// Build - метаданные сборки в том виде, в котором их отдает /version.
type Build struct {
	Name       string `json:"name"`
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate"`
	Commit     string `json:"commit"`
	Branch     string `json:"branch"`
	CI         string `json:"ci"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// BuildID считает номер сборки из BuildDate. Ошибка, если дата не
// задана, не разбирается или лежит до эпохи.
func BuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Обе даты в UTC, перевод летнего времени не мешает.
	days := int(t.Sub(buildEpoch).Hours() / 24)
	return days, nil
}

// Info собирает метаданные сборки; безопасна в любой момент, при
// проблемах с датой номер не считается и заполняется Error.
func Info() Build {
	b := Build{
		Name:      Name,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
	}

	id, err := BuildID()
	if err != nil {
		b.Error = err.Error()
		return b
	}

	b.BuildID = id
	b.Calculated = true
	return b
}

// String - однострочник для стартового лога.
func String() string {
	b := Info()

	if !b.Calculated {
		return fmt.Sprintf("%s build unknown (%s)", b.Name, b.Error)
	}

	return fmt.Sprintf(
		"%s build %d (%s) commit[%s] branch[%s] ci[%s]",
		b.Name,
		b.BuildID,
		b.BuildDate,
		orDefault(b.Commit, "unknown"),
		orDefault(b.Branch, "unknown"),
		orDefault(b.CI, "local"),
	)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
