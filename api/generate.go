package api

//go:generate go tool oapi-codegen --generate types -o types.gen.go -package=api openapi.yaml
//go:generate go tool oapi-codegen --generate chi-server -o server.gen.go -package=api openapi.yaml
