package authinfra_test

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/iam/auth/authinfra"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestBcryptPasswordService(t *testing.T) {
	svc := authinfra.NewBcryptPasswordService()
	hash, err := svc.Hash("hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if !svc.Verify(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if svc.Verify(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}

func TestRedisTokenDenylist(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	denylist := authinfra.NewRedisTokenDenylist(client)
	ctx := context.Background()

	if err := denylist.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("IsRevoked = %v, %v", revoked, err)
	}

	mr.FastForward(2 * time.Minute)
	if revoked, _ := denylist.IsRevoked(ctx, "jti-1"); revoked {
		t.Error("revocation should expire with the token")
	}

	if err := denylist.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatal(err)
	}
	if revoked, _ := denylist.IsRevoked(ctx, "jti-2"); revoked {
		t.Error("already expired tokens are not stored")
	}
}
