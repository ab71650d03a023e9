package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jacksonlmp/petkeep"
	"github.com/jacksonlmp/petkeep/schedule"
)

func newDashboardCmd() *cobra.Command {
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Petsitter appointment dashboard",
		Long: `Show your appointment calendar for a month and the agenda for a day.

Appointments live in a local schedule file under the data directory; use
'dashboard add' to record one and 'dashboard done' to mark it completed.

Examples:
  petkeep dashboard
  petkeep dashboard --month 2026-09
  petkeep dashboard --day 2026-09-14
  petkeep dashboard add --date 2026-09-14 --time 09:00 --pet Rex \
    --service keepwalk --owner "João Silva"`,
		RunE: runDashboard,
	}

	dashboardCmd.Flags().String("month", "", "month to display (YYYY-MM, default current)")
	dashboardCmd.Flags().String("day", "", "day agenda to display (YYYY-MM-DD, default today)")

	dashboardCmd.AddCommand(newDashboardAddCmd(), newDashboardDoneCmd())
	return dashboardCmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	book, err := schedule.Load(a.schedulePath())
	if err != nil {
		return err
	}

	now := time.Now()
	day := now
	if flag, _ := cmd.Flags().GetString("day"); flag != "" {
		if day, err = time.ParseInLocation("2006-01-02", flag, now.Location()); err != nil {
			return fmt.Errorf("invalid --day %q (want YYYY-MM-DD)", flag)
		}
	}

	month := day
	if flag, _ := cmd.Flags().GetString("month"); flag != "" {
		if month, err = time.ParseInLocation("2006-01", flag, now.Location()); err != nil {
			return fmt.Errorf("invalid --month %q (want YYYY-MM)", flag)
		}
	}

	out := cmd.OutOrStdout()
	renderMonth(out, book, month, day)
	renderAgenda(out, book, day)
	return nil
}

var weekDays = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// renderMonth prints the month grid. Days with appointments are
// highlighted; the selected day is bracketed.
func renderMonth(out io.Writer, book *schedule.Book, month, selected time.Time) {
	fmt.Fprintln(out, color.New(color.Bold).Sprint(month.Format("January 2006")))

	for _, d := range weekDays {
		fmt.Fprintf(out, "%4s", d)
	}
	fmt.Fprintln(out)

	marked := make(map[string]bool)
	for _, d := range book.MarkedDays(month) {
		marked[d.Format("2006-01-02")] = true
	}

	cells := schedule.Cells(month)
	for i, cell := range cells {
		switch {
		case cell.IsZero():
			fmt.Fprintf(out, "%4s", "")
		default:
			label := fmt.Sprintf("%d", cell.Day())
			key := cell.Format("2006-01-02")
			if key == selected.Format("2006-01-02") {
				label = "[" + label + "]"
			} else if marked[key] {
				label = color.MagentaString(label + "•")
			}
			fmt.Fprintf(out, "%4s", label)
		}
		if (i+1)%7 == 0 {
			fmt.Fprintln(out)
		}
	}
	if len(cells)%7 != 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}

// renderAgenda prints the day's appointments ordered by start time.
func renderAgenda(out io.Writer, book *schedule.Book, day time.Time) {
	appts := book.OnDay(day)

	fmt.Fprintln(out, color.New(color.Bold).Sprint(day.Format("Mon, 02 Jan")))
	if len(appts) == 0 {
		fmt.Fprintln(out, "No appointments.")
		return
	}

	for _, a := range appts {
		status := " "
		if a.Completed {
			status = color.GreenString("✓")
		}
		fmt.Fprintf(out, "%s %s  %-10s %-12s %s  (%s)\n",
			status, a.Time, a.PetName, serviceLabel(a.Service), a.Owner, a.ID)
	}
}

func serviceLabel(s petkeep.ServiceType) string {
	switch s {
	case petkeep.ServiceKeepWalk:
		return "KeepWalk"
	case petkeep.ServiceKeepHost:
		return "KeepHost"
	case petkeep.ServiceKeepSitter:
		return "KeepSitter"
	default:
		return string(s)
	}
}

func newDashboardAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an appointment in the local schedule",
		RunE:  runDashboardAdd,
	}

	cmd.Flags().String("date", "", "appointment date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "start time (HH:MM)")
	cmd.Flags().String("pet", "", "pet name")
	cmd.Flags().String("service", "", "service type code (keepwalk, keephost, keepsitter)")
	cmd.Flags().String("owner", "", "pet owner name")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")
	cmd.MarkFlagRequired("pet")
	cmd.MarkFlagRequired("service")
	cmd.MarkFlagRequired("owner")

	return cmd
}

func runDashboardAdd(cmd *cobra.Command, args []string) error {
	dateFlag, _ := cmd.Flags().GetString("date")
	timeFlag, _ := cmd.Flags().GetString("time")
	pet, _ := cmd.Flags().GetString("pet")
	service, _ := cmd.Flags().GetString("service")
	owner, _ := cmd.Flags().GetString("owner")

	date, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", dateFlag)
	}
	if _, err := time.Parse("15:04", timeFlag); err != nil {
		return fmt.Errorf("invalid --time %q (want HH:MM)", timeFlag)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	book, err := schedule.Load(a.schedulePath())
	if err != nil {
		return err
	}

	appt := schedule.Appointment{
		ID:      schedule.NewID(),
		Date:    date,
		Time:    timeFlag,
		PetName: pet,
		Service: petkeep.ServiceType(strings.ToLower(service)),
		Owner:   owner,
	}
	book.Add(appt)

	if err := schedule.Save(a.schedulePath(), book); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s for %s on %s at %s (%s).\n",
		color.GreenString("✓"), serviceLabel(appt.Service), pet, dateFlag, timeFlag, appt.ID)
	return nil
}

func newDashboardDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <appointment-id>",
		Short: "Mark an appointment as completed",
		Args:  cobra.ExactArgs(1),
		RunE:  runDashboardDone,
	}
}

func runDashboardDone(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	book, err := schedule.Load(a.schedulePath())
	if err != nil {
		return err
	}

	var id schedule.ID
	if err := id.UnmarshalText([]byte(args[0])); err != nil {
		return fmt.Errorf("invalid appointment ID %q", args[0])
	}

	if !book.SetCompleted(id, true) {
		return fmt.Errorf("no appointment with ID %s", args[0])
	}

	if err := schedule.Save(a.schedulePath(), book); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Marked %s as completed.\n", color.GreenString("✓"), args[0])
	return nil
}
