// Package oura provides a Go client for the Oura Ring API (v2).
//
// The client authenticates with a personal access token, paces itself under
// Oura's rate limit (5000 req/5 min via token bucket), and walks cursor-based
// pagination automatically: List methods follow next_token until the API is
// done and return the flattened records.
//
// # Quick Start
//
//	client := oura.NewClient(
//	    oura.WithToken("your_personal_access_token"),
//	)
//	defer client.Close()
//
//	info, err := client.PersonalInfo.Get(ctx)
//
// # Date ranges
//
// Every collection takes an optional date range. An absent end defaults to
// today, an absent start to the day before end, so a nil options value
// fetches yesterday through today:
//
//	sleeps, err := client.DailySleep.List(ctx, nil)
//	workouts, err := client.Workout.List(ctx, &oura.ListOptions{
//	    Start: "2023-01-01",
//	    End:   "2023-01-31",
//	})
//
// Heart rate filters on datetimes instead of days; its options accept full
// ISO 8601 datetimes with optional offsets.
//
// # Documents
//
// Most collections can re-fetch one record by its document ID:
//
//	workout, err := client.Workout.GetByID(ctx, "8f9a5221-639e-4a85-81cb-4065ef23f979")
package oura
