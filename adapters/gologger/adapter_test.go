package gologger

import "testing"

func TestResolveDefaultsName(t *testing.T) {
	provider, logger := Resolve("", nil, nil)
	if provider == nil || logger == nil {
		t.Fatalf("resolve must never return nil logging primitives")
	}
}

func TestToJobMappingsHandleNil(t *testing.T) {
	if ToJobProvider(nil) != nil {
		t.Fatalf("nil provider must map to nil")
	}
	if ToJobLogger(nil) != nil {
		t.Fatalf("nil logger must map to nil")
	}
}

func TestResolveForJob(t *testing.T) {
	provider, logger, jobProvider, jobLogger := ResolveForJob("runner", nil, nil)
	if provider == nil || logger == nil {
		t.Fatalf("glog primitives missing")
	}
	if jobProvider == nil || jobLogger == nil {
		t.Fatalf("job primitives missing")
	}
}
