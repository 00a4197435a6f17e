package transport

import (
	"context"
	"io"
	"testing"

	"golang.org/x/net/nettest"
)

func TestParseAddress(t *testing.T) {
	cases := []struct {
		in      string
		network string
		str     string
		wantErr bool
	}{
		{in: "unix:///var/run/docker.sock", network: "unix", str: "unix:///var/run/docker.sock"},
		{in: "/var/run/docker.sock", network: "unix", str: "unix:///var/run/docker.sock"},
		{in: "tcp://localhost:2375", network: "tcp", str: "tcp://localhost:2375"},
		{in: "unix://", wantErr: true},
		{in: "tcp://localhost", wantErr: true},
		{in: "http://localhost:2375", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, c := range cases {
		addr, err := ParseAddress(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseAddress(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", c.in, err)
		}
		if addr.Network() != c.network {
			t.Fatalf("ParseAddress(%q): network %q, want %q", c.in, addr.Network(), c.network)
		}
		if addr.String() != c.str {
			t.Fatalf("ParseAddress(%q): string %q, want %q", c.in, addr.String(), c.str)
		}
	}
}

func TestDefaultAddress(t *testing.T) {
	addr := DefaultAddress()
	if addr.String() != "unix://"+DefaultSocketPath {
		t.Fatalf("unexpected default address %q", addr.String())
	}
}

func TestAddressFromEnv(t *testing.T) {
	t.Setenv("DOCKER_HOST", "tcp://daemon:2375")
	addr, err := AddressFromEnv()
	if err != nil {
		t.Fatalf("AddressFromEnv: %v", err)
	}
	if addr.String() != "tcp://daemon:2375" {
		t.Fatalf("unexpected address %q", addr.String())
	}

	t.Setenv("DOCKER_HOST", "")
	addr, err = AddressFromEnv()
	if err != nil {
		t.Fatalf("AddressFromEnv: %v", err)
	}
	if addr != DefaultAddress() {
		t.Fatalf("expected default address, got %q", addr.String())
	}
}

func TestDialFailure(t *testing.T) {
	addr, err := ParseAddress("unix:///nonexistent/daemon.sock")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	if _, err := Dial(context.Background(), addr, Options{}); err == nil {
		t.Fatalf("expected connection error")
	}
}

func TestDialEmptyAddress(t *testing.T) {
	if _, err := Dial(context.Background(), Address{}, Options{}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestWriteAllAndCloseWrite(t *testing.T) {
	ln, err := nettest.NewLocalListener("unix")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		peer, err := ln.Accept()
		if err != nil {
			return
		}
		defer peer.Close()
		data, _ := io.ReadAll(peer)
		received <- data
		peer.Write([]byte("reply"))
	}()

	addr, err := ParseAddress("unix://" + ln.Addr().String())
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	conn, err := Dial(context.Background(), addr, Options{})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteAll([]byte("request bytes")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.CloseWrite(); err != nil {
		t.Fatalf("half-close: %v", err)
	}

	// The peer only sees EOF because of the half-close; the read side must
	// still deliver its reply.
	if got := string(<-received); got != "request bytes" {
		t.Fatalf("peer received %q", got)
	}
	reply := make([]byte, ReadChunkSize)
	n, err := conn.Read(reply)
	if err != nil && err != io.EOF {
		t.Fatalf("read: %v", err)
	}
	if string(reply[:n]) != "reply" {
		t.Fatalf("read %q", reply[:n])
	}
}

func TestCloseIdempotent(t *testing.T) {
	ln, err := nettest.NewLocalListener("unix")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go func() {
		for {
			peer, err := ln.Accept()
			if err != nil {
				return
			}
			peer.Close()
		}
	}()

	addr, err := ParseAddress("unix://" + ln.Addr().String())
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	conn, err := Dial(context.Background(), addr, Options{})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
