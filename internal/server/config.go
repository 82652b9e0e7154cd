package server

type Config struct {
	Addr           string `envconfig:"KDR_ADDR" default:":8787"`
	GRPCAddr       string `envconfig:"KDR_GRPC_ADDR"`
	MaxConnections int    `envconfig:"KDR_MAX_CONNECTIONS" default:"1024"`
}
