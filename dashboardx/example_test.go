package dashboardx_test

import (
	"context"
	"fmt"

	"github.com/topicboard/topicboard/configx"
	"github.com/topicboard/topicboard/dashboardx"
)

func ExampleNewFromConfig() {
	cfg, err := configx.New(
		configx.WithValue("base_url", "http://localhost:8000"),
	)
	if err != nil {
		panic(err)
	}

	d, err := dashboardx.NewFromConfig(cfg,
		dashboardx.WithDashboardNavigate(func(route string) {
			fmt.Println("navigating to", route)
		}),
		dashboardx.WithDashboardSubscriber(func(v dashboardx.View) {
			fmt.Printf("%d pending requests, %d topics\n", len(v.UncreatedRequests), len(v.CreatedTopics))
		}),
	)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	d.Start(ctx)
	defer d.Close()

	d.SubmitRequest(ctx, "orders", "3")
}
