// Package apiv1 holds the SurveyDashboard protobuf definition. The generated
// code (dashboard.pb.go, dashboard_grpc.pb.go) is produced by protoc and not
// committed.
package apiv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative dashboard.proto
