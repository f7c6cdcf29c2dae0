package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnConfigPick(t *testing.T) {
	transport, endpoint := connConfig{GrpcEndpoint: "g:4317", HttpEndpoint: "h:4318"}.pick()
	require.Equal(t, "grpc", transport)
	require.Equal(t, "g:4317", endpoint)

	transport, endpoint = connConfig{HttpEndpoint: "h:4318"}.pick()
	require.Equal(t, "http", transport)
	require.Equal(t, "h:4318", endpoint)
}
