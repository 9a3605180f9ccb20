package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	uc "github.com/silverbeer/swimcuttimes.com/internal/usecase"
)

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "swimctl:", err)
	return subcommands.ExitFailure
}

func tabOut() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

type loginCmd struct {
	server string
	token  string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "save the server URL and bearer token" }
func (*loginCmd) Usage() string {
	return "login -server URL -token TOKEN:\n  Save the connection profile.\n"
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.server, "server", "", "API base URL, e.g. https://api.swimcuttimes.com")
	f.StringVar(&c.token, "token", "", "bearer token")
}

func (c *loginCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.server == "" {
		return fail(fmt.Errorf("-server required"))
	}
	if err := saveProfile(Profile{Server: c.server, Token: c.token}); err != nil {
		return fail(err)
	}
	fmt.Println("profile saved")
	return subcommands.ExitSuccess
}

type swimmersCmd struct {
	name   string
	gender string
	teamID string
}

func (*swimmersCmd) Name() string     { return "swimmers" }
func (*swimmersCmd) Synopsis() string { return "list swimmers" }
func (*swimmersCmd) Usage() string    { return "swimmers [-name N] [-gender M|F] [-team ID]:\n" }

func (c *swimmersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "name substring")
	f.StringVar(&c.gender, "gender", "", "M or F")
	f.StringVar(&c.teamID, "team", "", "team id")
}

func (c *swimmersCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := newClient()
	if err != nil {
		return fail(err)
	}
	var resp struct {
		Swimmers []domain.Swimmer `json:"swimmers"`
	}
	q := query(map[string]string{"name": c.name, "gender": c.gender, "team_id": c.teamID})
	if err := cl.doJSON(ctx, "GET", "/swimmers"+q, nil, &resp); err != nil {
		return fail(err)
	}
	w := tabOut()
	fmt.Fprintln(w, "ID\tNAME\tGENDER\tBORN")
	for _, s := range resp.Swimmers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.FullName(), s.Gender, s.DateOfBirth.Format("2006-01-02"))
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type teamsCmd struct {
	teamType string
	lsc      string
}

func (*teamsCmd) Name() string     { return "teams" }
func (*teamsCmd) Synopsis() string { return "list teams" }
func (*teamsCmd) Usage() string    { return "teams [-type T] [-lsc LSC]:\n" }

func (c *teamsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.teamType, "type", "", "club, high_school, college, national or olympic")
	f.StringVar(&c.lsc, "lsc", "", "LSC code")
}

func (c *teamsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := newClient()
	if err != nil {
		return fail(err)
	}
	var resp struct {
		Teams []domain.Team `json:"teams"`
	}
	q := query(map[string]string{"team_type": c.teamType, "lsc": c.lsc})
	if err := cl.doJSON(ctx, "GET", "/teams"+q, nil, &resp); err != nil {
		return fail(err)
	}
	w := tabOut()
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tLSC")
	for _, t := range resp.Teams {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Type, t.LSC)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type meetsCmd struct {
	course string
	from   string
	to     string
}

func (*meetsCmd) Name() string     { return "meets" }
func (*meetsCmd) Synopsis() string { return "list meets" }
func (*meetsCmd) Usage() string    { return "meets [-course scy|scm|lcm] [-from D] [-to D]:\n" }

func (c *meetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.course, "course", "", "scy, scm or lcm")
	f.StringVar(&c.from, "from", "", "start date from (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "start date to (YYYY-MM-DD)")
}

func (c *meetsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := newClient()
	if err != nil {
		return fail(err)
	}
	var resp struct {
		Meets []domain.Meet `json:"meets"`
	}
	q := query(map[string]string{"course": c.course, "from": c.from, "to": c.to})
	if err := cl.doJSON(ctx, "GET", "/meets"+q, nil, &resp); err != nil {
		return fail(err)
	}
	w := tabOut()
	fmt.Fprintln(w, "ID\tNAME\tCOURSE\tSTART\tCITY")
	for _, m := range resp.Meets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Course, m.StartDate.Format("2006-01-02"), m.City)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type timesCmd struct {
	swimmerID string
	eventID   string
	meetID    string
}

func (*timesCmd) Name() string     { return "times" }
func (*timesCmd) Synopsis() string { return "list recorded swims" }
func (*timesCmd) Usage() string    { return "times [-swimmer ID] [-event ID] [-meet ID]:\n" }

func (c *timesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.swimmerID, "swimmer", "", "swimmer id")
	f.StringVar(&c.eventID, "event", "", "event id")
	f.StringVar(&c.meetID, "meet", "", "meet id")
}

func (c *timesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := newClient()
	if err != nil {
		return fail(err)
	}
	var resp struct {
		Times []domain.SwimTime `json:"times"`
	}
	q := query(map[string]string{"swimmer_id": c.swimmerID, "event_id": c.eventID, "meet_id": c.meetID})
	if err := cl.doJSON(ctx, "GET", "/times"+q, nil, &resp); err != nil {
		return fail(err)
	}
	w := tabOut()
	fmt.Fprintln(w, "ID\tDATE\tTIME\tROUND\tOFFICIAL\tDQ")
	for _, t := range resp.Times {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%v\n",
			t.ID, t.SwimDate.Format("2006-01-02"), domain.FormatCentiseconds(t.Centiseconds), t.Round, t.Official, t.DQ)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type logTimeCmd struct {
	swimmerID string
	meetID    string
	teamID    string
	stroke    string
	distance  int
	course    string
	clock     string
	date      string
	round     string
}

func (*logTimeCmd) Name() string     { return "log" }
func (*logTimeCmd) Synopsis() string { return "record a swim" }
func (*logTimeCmd) Usage() string {
	return "log -swimmer ID -meet ID -team ID -stroke S -distance D -course C -time T -date D [-round R]:\n"
}

func (c *logTimeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.swimmerID, "swimmer", "", "swimmer id")
	f.StringVar(&c.meetID, "meet", "", "meet id")
	f.StringVar(&c.teamID, "team", "", "team id")
	f.StringVar(&c.stroke, "stroke", "", "freestyle, backstroke, breaststroke, butterfly or im")
	f.IntVar(&c.distance, "distance", 0, "distance in the meet's course unit")
	f.StringVar(&c.course, "course", "", "scy, scm or lcm")
	f.StringVar(&c.clock, "time", "", "clock time, e.g. 1:02.48 or 28.95")
	f.StringVar(&c.date, "date", "", "swim date (YYYY-MM-DD)")
	f.StringVar(&c.round, "round", "", "prelims, finals, consolation, bonus_finals or time_trial")
}

func (c *logTimeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := newClient()
	if err != nil {
		return fail(err)
	}
	var created domain.SwimTime
	err = cl.doJSON(ctx, "POST", "/times", map[string]interface{}{
		"swimmer_id": c.swimmerID,
		"meet_id":    c.meetID,
		"team_id":    c.teamID,
		"stroke":     c.stroke,
		"distance":   c.distance,
		"course":     c.course,
		"time":       c.clock,
		"swim_date":  c.date,
		"round":      c.round,
	}, &created)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("recorded %s as %s\n", domain.FormatCentiseconds(created.Centiseconds), created.ID)
	return subcommands.ExitSuccess
}

type bestCmd struct {
	swimmerID string
}

func (*bestCmd) Name() string     { return "best" }
func (*bestCmd) Synopsis() string { return "show a swimmer's best time per event" }
func (*bestCmd) Usage() string    { return "best -swimmer ID:\n" }

func (c *bestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.swimmerID, "swimmer", "", "swimmer id")
}

func (c *bestCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := newClient()
	if err != nil {
		return fail(err)
	}
	var resp struct {
		BestTimes []uc.BestTime `json:"best_times"`
	}
	if err := cl.doJSON(ctx, "GET", "/swimmers/"+c.swimmerID+"/best-times", nil, &resp); err != nil {
		return fail(err)
	}
	w := tabOut()
	fmt.Fprintln(w, "EVENT\tTIME\tDATE")
	for _, b := range resp.BestTimes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Event.ShortName(), b.TimeFormatted, b.Swim.SwimDate.Format("2006-01-02"))
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type qualifyCmd struct {
	timeID string
	body   string
}

func (*qualifyCmd) Name() string     { return "qualify" }
func (*qualifyCmd) Synopsis() string { return "check a swim against qualifying cuts" }
func (*qualifyCmd) Usage() string    { return "qualify -time ID [-body USA-S]:\n" }

func (c *qualifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeID, "time", "", "swim time id")
	f.StringVar(&c.body, "body", "", "sanctioning body filter")
}

func (c *qualifyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := newClient()
	if err != nil {
		return fail(err)
	}
	var eval uc.SwimEvaluation
	q := query(map[string]string{"sanctioning_body": c.body})
	if err := cl.doJSON(ctx, "GET", "/times/"+c.timeID+"/standards"+q, nil, &eval); err != nil {
		return fail(err)
	}
	fmt.Printf("%s %s, age group %s\n",
		eval.Event.ShortName(), domain.FormatCentiseconds(eval.Swim.Centiseconds), eval.AgeGroup)
	w := tabOut()
	fmt.Fprintln(w, "STANDARD\tCUT\tMET\tMARGIN")
	for _, v := range eval.Verdicts {
		fmt.Fprintf(w, "%s %s\t%s\t%v\t%+.2fs\n",
			v.Standard.StandardName, v.Standard.CutLevel, v.Standard.TimeFormatted(), v.Met, v.MarginSeconds)
	}
	w.Flush()
	if eval.NextUnmet != nil {
		fmt.Printf("next cut: %s %s, %.2fs away\n",
			eval.NextUnmet.Standard.StandardName, eval.NextUnmet.Standard.CutLevel, eval.NextUnmet.MarginSeconds)
	}
	return subcommands.ExitSuccess
}

type standardsCmd struct {
	stroke   string
	distance int
	course   string
	gender   string
	ageGroup string
}

func (*standardsCmd) Name() string     { return "standards" }
func (*standardsCmd) Synopsis() string { return "search time standards" }
func (*standardsCmd) Usage() string {
	return "standards [-stroke S] [-distance D] [-course C] [-gender G] [-age-group A]:\n"
}

func (c *standardsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stroke, "stroke", "", "stroke")
	f.IntVar(&c.distance, "distance", 0, "distance")
	f.StringVar(&c.course, "course", "", "scy, scm or lcm")
	f.StringVar(&c.gender, "gender", "", "M or F")
	f.StringVar(&c.ageGroup, "age-group", "", "e.g. 13-14 or Open")
}

func (c *standardsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := newClient()
	if err != nil {
		return fail(err)
	}
	var resp struct {
		Standards []domain.TimeStandard `json:"standards"`
	}
	q := map[string]string{
		"stroke": c.stroke, "course": c.course, "gender": c.gender, "age_group": c.ageGroup,
	}
	if c.distance > 0 {
		q["distance"] = fmt.Sprint(c.distance)
	}
	if err := cl.doJSON(ctx, "GET", "/standards"+query(q), nil, &resp); err != nil {
		return fail(err)
	}
	w := tabOut()
	fmt.Fprintln(w, "ID\tEVENT\tGENDER\tAGE\tNAME\tCUT\tTIME")
	for _, ts := range resp.Standards {
		age := ts.AgeGroup
		if age == "" {
			age = "Open"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			ts.ID, ts.Event.ShortName(), ts.Gender, age, ts.StandardName, ts.CutLevel, ts.TimeFormatted())
	}
	w.Flush()
	return subcommands.ExitSuccess
}
