package core

import "testing"

type testObject struct {
	id   string
	name string
}

func (o *testObject) ObjectID() string { return o.id }

func (o *testObject) Name() string { return o.name }

func (o *testObject) FieldMappings() []FieldMappingRule {
	return []FieldMappingRule{{Source: "F1", Target: "T1"}}
}

func (o *testObject) QualityChecks() QualityChecks {
	return QualityChecks{Required: []string{"T1"}}
}

func (o *testObject) ExtractMock() []Record {
	return []Record{{"F1": "v1"}}
}

func testFactory(id string) ObjectFactory {
	return func() MigrationObject {
		return &testObject{id: id, name: "Test " + id}
	}
}

func TestObjectRegistryRegisterAndCreate(t *testing.T) {
	registry := NewObjectRegistry()
	for _, id := range []string{"Zeta", "Alpha", "Beta"} {
		if err := registry.Register(testFactory(id)); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}

	if got := registry.IDs(); len(got) != 3 || got[0] != "Zeta" {
		t.Fatalf("IDs must preserve registration order, got %v", got)
	}
	if got := registry.SortedIDs(); got[0] != "Alpha" || got[2] != "Zeta" {
		t.Fatalf("SortedIDs must be lexicographic, got %v", got)
	}

	object, err := registry.CreateObject("Alpha")
	if err != nil {
		t.Fatalf("create object: %v", err)
	}
	if object.ObjectID() != "Alpha" {
		t.Fatalf("unexpected object %s", object.ObjectID())
	}
}

func TestObjectRegistryDuplicateRejected(t *testing.T) {
	registry := NewObjectRegistry()
	if err := registry.Register(testFactory("BusinessPartner")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(testFactory("BusinessPartner")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestObjectRegistryUnknownID(t *testing.T) {
	registry := NewObjectRegistry()
	if _, err := registry.CreateObject("Nope"); err == nil {
		t.Fatalf("expected unknown id to fail")
	}
}

func TestObjectRegistryCreateReturnsFreshInstances(t *testing.T) {
	registry := NewObjectRegistry()
	if err := registry.Register(testFactory("BankMaster")); err != nil {
		t.Fatalf("register: %v", err)
	}
	first, _ := registry.CreateObject("BankMaster")
	second, _ := registry.CreateObject("BankMaster")
	if first == second {
		t.Fatalf("CreateObject must return fresh instances")
	}
}

func TestObjectRegistryGetObjectCachesPerMode(t *testing.T) {
	registry := NewObjectRegistry()
	if err := registry.Register(testFactory("CostCenter")); err != nil {
		t.Fatalf("register: %v", err)
	}

	mockFirst, _ := registry.GetObject("CostCenter", ModeMock)
	mockSecond, _ := registry.GetObject("CostCenter", ModeMock)
	if mockFirst != mockSecond {
		t.Fatalf("GetObject must cache per (id, mode)")
	}

	liveFirst, _ := registry.GetObject("CostCenter", ModeLive)
	if liveFirst == mockFirst {
		t.Fatalf("modes must not share cached instances")
	}

	registry.ClearCache()
	mockThird, _ := registry.GetObject("CostCenter", ModeMock)
	if mockThird == mockFirst {
		t.Fatalf("ClearCache must drop cached instances")
	}
}
