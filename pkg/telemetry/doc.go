// Package telemetry is a best-effort error-reporting client.
//
// A Client captures exceptions and log-like messages, decorates them with a
// bounded breadcrumb trail, tags, user identity, and host context, and posts
// each report as JSON to a remote collection endpoint. Delivery is
// fire-and-forget: capture methods return immediately, transmission runs on
// its own goroutine, and every failure mode degrades to telemetry silently
// lost so instrumentation can never destabilize the host application.
//
//	client := telemetry.New(telemetry.Config{
//		APIKey:   os.Getenv("ERRTRAIL_API_KEY"),
//		Endpoint: "https://errors.example.com",
//		Release:  "1.4.2",
//	})
//	client.Init()
//
//	client.AddBreadcrumb(telemetry.Breadcrumb{
//		Message:  "checkout started",
//		Category: "ui",
//		Level:    telemetry.LevelInfo,
//	})
//
//	if err := checkout(); err != nil {
//		client.CaptureException(err, nil)
//	}
package telemetry
