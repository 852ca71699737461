package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/inference-sim/checkout-sim/sim"
	"github.com/inference-sim/checkout-sim/sim/checkout"
)

// runReport is the JSON document printed by `run`.
type runReport struct {
	Result *checkout.EvaluationResult  `json:"result"`
	Queues []laneQueue                 `json:"queues,omitempty"`
	Advice *checkout.LaneOpeningAdvice `json:"lane_opening_advice,omitempty"`
}

type laneQueue struct {
	LaneID    int            `json:"lane_id"`
	Express   bool           `json:"express"`
	Cashier   string         `json:"cashier"`
	Customers []customerView `json:"customers"`
}

type customerView struct {
	ID        int     `json:"id"`
	Items     int     `json:"items"`
	TotalTime float64 `json:"total_time_s"`
}

func laneQueues(lanes []*sim.Lane) []laneQueue {
	out := make([]laneQueue, 0, len(lanes))
	for _, l := range lanes {
		q := laneQueue{LaneID: l.ID, Express: l.Express, Cashier: l.Cashier().String(), Customers: []customerView{}}
		for _, c := range l.Queue() {
			q.Customers = append(q.Customers, customerView{ID: c.ID, Items: c.ItemCount, TotalTime: c.TotalTime})
		}
		out = append(out, q)
	}
	return out
}

func writeRunReport(w io.Writer, r runReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// sweepHeader is the CSV header written by `sweep`.
func sweepHeader() []string {
	return append([]string{"run_id", "lanes", "seed"}, sim.CostRecordHeader()...)
}

// writeSweepCSV writes one row per replicate, grouped by lane count.
func writeSweepCSV(w io.Writer, points []checkout.SweepPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sweepHeader()); err != nil {
		return err
	}
	for _, p := range points {
		for _, r := range p.Results {
			row := append([]string{r.RunID.String(), strconv.Itoa(p.Lanes), strconv.FormatInt(r.Seed, 10)}, r.Cost.Row()...)
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
