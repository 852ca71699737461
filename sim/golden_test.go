package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inference-sim/checkout-sim/sim/internal/testutil"
)

const goldenRelTol = 1e-9

func TestEvaluate_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			// GIVEN the case's lanes filled in order, IDs assigned across lanes
			lanes := make([]*Lane, len(tc.Lanes))
			var customers []*Customer
			for i, gl := range tc.Lanes {
				lanes[i] = NewLane(i+1, NewCashier(i+1, gl.Experienced, gl.CheckoutTime, tc.ServiceMultiplier), gl.Express)
				for _, items := range gl.Items {
					c := NewCustomer(len(customers)+1, items)
					require.True(t, lanes[i].Add(c), "case lays out an ineligible customer")
					customers = append(customers, c)
				}
			}

			// WHEN service times are computed and the pass is priced
			ComputeAllServiceTimes(lanes)
			rec, err := Evaluate(lanes, customers, DefaultCostParams())
			require.NoError(t, err)

			// THEN every metric matches the hand-computed values
			m := tc.Metrics
			require.Len(t, m.LaneTotalsS, len(lanes))
			for i, l := range lanes {
				testutil.AssertFloat64Equal(t, l.String(), m.LaneTotalsS[i], l.TotalServiceTime, goldenRelTol)
			}
			require.Equal(t, len(lanes), rec.ActiveLanes)
			require.Equal(t, m.TotalCustomers, rec.TotalCustomers)
			testutil.AssertFloat64Equal(t, "operation_time_minutes", m.OperationTimeMinutes, rec.OperationTimeMinutes, goldenRelTol)
			testutil.AssertFloat64Equal(t, "system_time_sum_minutes", m.SystemTimeSumMinutes, rec.SystemTimeSumMinutes, goldenRelTol)
			testutil.AssertFloat64Equal(t, "sla_attainment_percent", m.SLAAttainmentPercent, rec.SLAAttainmentPercent, goldenRelTol)
			testutil.AssertFloat64Equal(t, "lane_cost_usd", m.LaneCostUSD, rec.LaneCostUSD, goldenRelTol)
			testutil.AssertFloat64Equal(t, "wait_cost_usd", m.WaitCostUSD, rec.WaitCostUSD, goldenRelTol)
			testutil.AssertFloat64Equal(t, "sla_penalty_usd", m.SLAPenaltyUSD, rec.SLAPenaltyUSD, goldenRelTol)
			testutil.AssertFloat64Equal(t, "total_cost_usd", m.TotalCostUSD, rec.TotalCostUSD, goldenRelTol)
		})
	}
}
