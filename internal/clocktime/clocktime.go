// Package clocktime generates clock reading and drawing, duration and
// calendar problems.
package clocktime

import (
	"fmt"
	"strconv"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
	"github.com/abhisek/worksheetz/internal/svg"
)

type Type string

const (
	ReadClock      Type = "read-clock"
	DrawClock      Type = "draw-clock"
	Elapsed        Type = "elapsed-time"
	EndTime        Type = "end-time"
	StartTime      Type = "start-time"
	UnitConversion Type = "unit-conversion"
	Calendar       Type = "calendar"
)

var titles = map[Type]string{
	ReadClock:      "Saati Okuma",
	DrawClock:      "Saati Gösterme",
	Elapsed:        "Geçen Süre",
	EndTime:        "Bitiş Zamanı",
	StartTime:      "Başlangıç Zamanı",
	UnitConversion: "Zaman Birimleri",
	Calendar:       "Takvim",
}

// NiceDurations are the minute values used for start and end time problems.
var NiceDurations = []int{15, 20, 30, 45, 60, 75, 90, 105, 120}

// Weekdays starts on Monday.
var Weekdays = []string{"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar"}

type Settings struct {
	Type       Type               `json:"type"`
	Difficulty problem.Difficulty `json:"difficulty"`
	// ShowNumbers prints 1 to 12 on clock faces.
	ShowNumbers bool `json:"showNumbers"`
}

func DefaultSettings() Settings {
	return Settings{Type: ReadClock, Difficulty: problem.Easy, ShowNumbers: true}
}

func (s Settings) Validate() error {
	if _, ok := titles[s.Type]; !ok {
		return problem.InvalidSettings("unknown time problem type %q", s.Type)
	}
	if !s.Difficulty.Valid() {
		return problem.InvalidSettings("unknown difficulty %q", s.Difficulty)
	}
	return nil
}

// Time is a time of day in minutes since midnight.
type Time int

func At(hour, minute int) Time { return Time(hour*60 + minute) }

func (t Time) Hour() int   { return int(t) / 60 % 24 }
func (t Time) Minute() int { return int(t) % 60 }

// Add shifts t by minutes, wrapping around midnight.
func (t Time) Add(minutes int) Time {
	return Time(((int(t)+minutes)%1440 + 1440) % 1440)
}

func (t Time) String() string { return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()) }

// ClockString writes t the way an analog clock reads, hours 1 to 12.
func (t Time) ClockString() string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, t.Minute())
}

// granularity is the minute step of clock times per difficulty.
func granularity(d problem.Difficulty) int {
	switch d {
	case problem.Medium:
		return 5
	case problem.Hard:
		return 1
	}
	return 30
}

func clockTime(src *random.Source, d problem.Difficulty) Time {
	g := granularity(d)
	return At(src.Int(1, 12), src.Intn(60/g)*g)
}

// dayTime draws a time between 07:00 and 18:59 on the difficulty grid.
func dayTime(src *random.Source, d problem.Difficulty) Time {
	g := max(granularity(d), 5)
	return At(src.Int(7, 18), src.Intn(60/g)*g)
}

func durationText(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d dakika", m)
	case m == 0:
		return fmt.Sprintf("%d saat", h)
	}
	return fmt.Sprintf("%d saat %d dakika", h, m)
}

func Generate(src *random.Source, s Settings) problem.Result {
	title := titles[s.Type]
	if title == "" {
		title = "Zaman Ölçme"
	}
	if err := s.Validate(); err != nil {
		return problem.Fail(title, problem.CategoryTime, err)
	}

	var q, a string
	switch s.Type {
	case ReadClock:
		t := clockTime(src, s.Difficulty)
		q = svg.Clock(t.Hour(), t.Minute(), svg.ClockOptions{ShowNumbers: s.ShowNumbers, ShowHands: true}) +
			"<br>" + markup.Text("Saat kaçı gösteriyor?")
		a = t.ClockString()

	case DrawClock:
		t := clockTime(src, s.Difficulty)
		q = svg.Clock(0, 0, svg.ClockOptions{ShowNumbers: s.ShowNumbers}) + "<br>" +
			markup.Text("Akrep ve yelkovanı çizerek saati gösteriniz: ") + markup.Bold(t.ClockString())
		a = svg.Clock(t.Hour(), t.Minute(), svg.ClockOptions{ShowNumbers: true, ShowHands: true})

	case Elapsed:
		start := dayTime(src, s.Difficulty)
		step := max(granularity(s.Difficulty), 5)
		d := src.Int(2, 36) * step
		end := start.Add(d)
		q = markup.Text(fmt.Sprintf("Başlangıç saati %s, bitiş saati %s. Aradan kaç dakika geçmiştir?", start, end))
		a = fmt.Sprintf("%d dakika", d)
		if d >= 60 {
			a += " (" + durationText(d) + ")"
		}

	case EndTime:
		start := dayTime(src, s.Difficulty)
		d := random.Pick(src, NiceDurations)
		q = markup.Text(fmt.Sprintf("%s saatinde başlayan bir etkinlik %s sürüyor. Etkinlik saat kaçta biter?", start, durationText(d)))
		a = start.Add(d).String()

	case StartTime:
		end := dayTime(src, s.Difficulty).Add(120)
		d := random.Pick(src, NiceDurations)
		q = markup.Text(fmt.Sprintf("%s süren bir etkinlik saat %s itibarıyla bitiyor. Etkinlik saat kaçta başlamıştır?", durationText(d), end))
		a = end.Add(-d).String()

	case UnitConversion:
		q, a = conversion(src, s.Difficulty)

	case Calendar:
		day := src.Intn(len(Weekdays))
		n := src.Int(1, 6)
		if s.Difficulty != problem.Easy {
			n = src.Int(7, 30)
		}
		if s.Difficulty == problem.Hard && src.Bool() {
			q = markup.Text(fmt.Sprintf("Bugün günlerden %s. %d gün önce hangi gündü?", Weekdays[day], n))
			a = Weekdays[((day-n)%7+7)%7]
		} else {
			q = markup.Text(fmt.Sprintf("Bugün günlerden %s. %d gün sonra hangi gün olur?", Weekdays[day], n))
			a = Weekdays[(day+n)%7]
		}
	}
	return problem.OK(problem.Problem{Question: q, Answer: a, Category: problem.CategoryTime, Display: problem.DisplayInline}, title)
}

type unitPair struct {
	big, small string
	factor     int
}

var unitPairs = []unitPair{
	{"saat", "dakika", 60},
	{"dakika", "saniye", 60},
	{"gün", "saat", 24},
	{"hafta", "gün", 7},
	{"yıl", "ay", 12},
}

func conversion(src *random.Source, d problem.Difficulty) (string, string) {
	u := random.Pick(src, unitPairs)
	n := src.Int(2, 10)
	if src.Bool() {
		return markup.Text(fmt.Sprintf("%d %s = ? %s", n, u.big, u.small)), strconv.Itoa(n*u.factor) + " " + u.small
	}
	if d == problem.Hard {
		extra := src.Int(1, u.factor-1)
		return markup.Text(fmt.Sprintf("%d %s = ? %s ? %s", n*u.factor+extra, u.small, u.big, u.small)),
			fmt.Sprintf("%d %s %d %s", n, u.big, extra, u.small)
	}
	return markup.Text(fmt.Sprintf("%d %s = ? %s", n*u.factor, u.small, u.big)), strconv.Itoa(n) + " " + u.big
}
