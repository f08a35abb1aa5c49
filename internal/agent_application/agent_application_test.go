package agentapplication

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	orchestrator "github.com/ERRORIK404/Keypad_Calculator/internal/orchestrator_application"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/blobstore"
	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
	tokens "github.com/ERRORIK404/Keypad_Calculator/pkg/tokenezation"
)

func startAgent(t *testing.T, opts orchestrator.Options) (*Agent, *bytes.Buffer) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	grpcServer := orchestrator.NewGRPCServer(orchestrator.NewServer(opts))
	go grpcServer.Serve(lis)
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var out bytes.Buffer
	return New(conn, &out), &out
}

func TestRunPrintsDisplay(t *testing.T) {
	agent, out := startAgent(t, orchestrator.Options{Blobs: blobstore.NewMemory()})

	require.NoError(t, agent.Run(context.Background(), "5+3="))
	assert.Equal(t, "5\t | 5\n+\t5 + | \n3\t5 + | 3\nEnter\t | 8\n", out.String())
}

func TestRunContinuesAfterNotice(t *testing.T) {
	agent, out := startAgent(t, orchestrator.Options{Blobs: blobstore.NewMemory()})

	require.NoError(t, agent.Run(context.Background(), "7/0=<2="))
	assert.Contains(t, out.String(), "Enter\t! cannot divide by zero\n")
	assert.Contains(t, out.String(), "Enter\t | 3.5\n")
}

func TestRunRejectsBadScript(t *testing.T) {
	agent, _ := startAgent(t, orchestrator.Options{Blobs: blobstore.NewMemory()})

	err := agent.Run(context.Background(), "2^2")
	assert.ErrorIs(t, err, locerr.ErrInvalidCharacter)
}

func TestHistoryReplayAndClear(t *testing.T) {
	agent, out := startAgent(t, orchestrator.Options{Blobs: blobstore.NewMemory()})
	ctx := context.Background()

	require.NoError(t, agent.PrintHistory(ctx))
	assert.Equal(t, "No calculations yet\n", out.String())

	require.NoError(t, agent.Run(ctx, "2500*2=C"))
	out.Reset()

	require.NoError(t, agent.PrintHistory(ctx))
	assert.Contains(t, out.String(), "0\t2500 × 2 = 5,000\t")

	out.Reset()
	require.NoError(t, agent.Replay(ctx, 0))
	assert.Equal(t, "replay\t | 5,000\n", out.String())

	err := agent.Replay(ctx, 3)
	assert.Equal(t, codes.NotFound, status.Code(err))

	require.NoError(t, agent.ClearHistory(ctx))
	out.Reset()
	require.NoError(t, agent.PrintHistory(ctx))
	assert.Equal(t, "No calculations yet\n", out.String())
}

func TestWithToken(t *testing.T) {
	const secret = "agent-secret"
	agent, out := startAgent(t, orchestrator.Options{Blobs: blobstore.NewMemory(), JWTSecret: secret})

	err := agent.Run(context.Background(), "1")
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := tokens.GenerateToken("dave", secret, time.Minute)
	require.NoError(t, err)
	require.NoError(t, agent.Run(WithToken(context.Background(), token), "1"))
	assert.Equal(t, "1\t | 1\n", out.String())

	assert.Equal(t, context.Background(), WithToken(context.Background(), ""))
}
