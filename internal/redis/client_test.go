package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
	"github.com/KirkDiggler/dnd35-sheet/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestNewClient() {
	client, err := redis.NewClient(s.mr.Addr(), &redis.Options{PoolSize: 2})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	s.Require().NoError(client.Set(ctx, "greeting", "hello", 0).Err())
	got, err := client.Get(ctx, "greeting").Result()
	s.NoError(err)
	s.Equal("hello", got)

	_, err = client.Get(ctx, "missing").Result()
	s.ErrorIs(err, redis.Nil)
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	_, err := redis.NewClient("", nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestConnect() {
	s.Run("single endpoint", func() {
		client, err := redis.Connect([]string{s.mr.Addr()}, nil)
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()
		s.NoError(client.Ping(context.Background()).Err())
	})

	s.Run("no endpoints", func() {
		_, err := redis.Connect(nil, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("cluster endpoints", func() {
		client, err := redis.Connect([]string{"127.0.0.1:7000", "127.0.0.1:7001"}, nil)
		s.Require().NoError(err)
		s.NotNil(client)
		_ = client.Close()
	})
}
