package orchestrator_application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
	tokens "github.com/ERRORIK404/Keypad_Calculator/pkg/tokenezation"
)

type loginKey struct{}

func withLogin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, loginKey{}, login)
}

func loginFromContext(ctx context.Context) string {
	login, _ := ctx.Value(loginKey{}).(string)
	return login
}

// authenticate resolves an Authorization header to a login. With no secret
// configured every caller is the anonymous login "".
func (s *Server) authenticate(header string) (string, error) {
	if s.opts.JWTSecret == "" {
		return "", nil
	}
	token, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: missing bearer token", locerr.ErrInvalidToken)
	}
	return tokens.CheckToken(strings.TrimSpace(token), s.opts.JWTSecret)
}

// UnaryAuthInterceptor puts the caller's login into the request context.
func (s *Server) UnaryAuthInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("authorization"); len(values) > 0 {
			header = values[0]
		}
	}

	login, err := s.authenticate(header)
	if err != nil {
		s.log.Debug("rejected call", zap.String("method", info.FullMethod), zap.Error(err))
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	return handler(withLogin(ctx, login), req)
}
