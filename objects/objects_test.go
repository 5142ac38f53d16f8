package objects

import (
	"context"
	"testing"

	"github.com/ib823/sapconnect-sub002/core"
	"github.com/ib823/sapconnect-sub002/runner"
)

func TestBuiltinsAreDistinctAndWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, factory := range Builtins() {
		object := factory()
		id := object.ObjectID()
		if id == "" {
			t.Fatal("object with empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate object id %q", id)
		}
		seen[id] = true
		if object.Name() == "" {
			t.Fatalf("%s: empty name", id)
		}
		if rules := len(object.FieldMappings()); rules < 25 {
			t.Fatalf("%s: %d field mappings, want at least 25", id, rules)
		}
		if len(object.ExtractMock()) == 0 {
			t.Fatalf("%s: no mock records", id)
		}
	}
	if len(seen) != 42 {
		t.Fatalf("builtins = %d, want 42", len(seen))
	}
}

func TestBuiltinMappingsValidate(t *testing.T) {
	for _, factory := range Builtins() {
		object := factory()
		for _, rule := range object.FieldMappings() {
			if err := rule.Validate(); err != nil {
				t.Fatalf("%s: %v", object.ObjectID(), err)
			}
			if rule.Convert != "" && !core.IsSupportedConverter(rule.Convert) {
				t.Fatalf("%s: rule %q uses unsupported converter %q", object.ObjectID(), rule.Target, rule.Convert)
			}
		}
	}
}

func TestBuiltinChecksReferenceMappedTargets(t *testing.T) {
	for _, factory := range Builtins() {
		object := factory()
		targets := map[string]bool{}
		for _, rule := range object.FieldMappings() {
			targets[rule.Target] = true
		}
		checks := object.QualityChecks()
		for _, field := range checks.Required {
			if !targets[field] {
				t.Fatalf("%s: required field %q not produced by any mapping", object.ObjectID(), field)
			}
		}
		if checks.ExactDuplicate != nil {
			for _, key := range checks.ExactDuplicate.Keys {
				if !targets[key] {
					t.Fatalf("%s: duplicate key %q not produced by any mapping", object.ObjectID(), key)
				}
			}
		}
		for _, check := range checks.Range {
			if !targets[check.Field] {
				t.Fatalf("%s: range field %q not produced by any mapping", object.ObjectID(), check.Field)
			}
			if check.Min > check.Max {
				t.Fatalf("%s: range %q has min > max", object.ObjectID(), check.Field)
			}
		}
	}
}

func TestBuiltinMockFixturesAreDeterministic(t *testing.T) {
	for _, factory := range Builtins() {
		object := factory()
		first := object.ExtractMock()
		second := object.ExtractMock()
		if len(first) != len(second) {
			t.Fatalf("%s: fixture length varies: %d vs %d", object.ObjectID(), len(first), len(second))
		}
		for idx := range first {
			if len(first[idx]) != len(second[idx]) {
				t.Fatalf("%s: record %d field count varies", object.ObjectID(), idx)
			}
			for key, value := range first[idx] {
				if second[idx][key] != value {
					t.Fatalf("%s: record %d field %q varies: %v vs %v", object.ObjectID(), idx, key, value, second[idx][key])
				}
			}
		}
	}
}

func TestBuiltinSourceQueriesDeclareTables(t *testing.T) {
	tables := map[string]string{}
	for _, factory := range Builtins() {
		object := factory()
		sourced, ok := object.(core.TableSourced)
		if !ok {
			t.Fatalf("%s: not table sourced", object.ObjectID())
		}
		query := sourced.SourceQuery()
		if query.Table == "" {
			t.Fatalf("%s: empty source table", object.ObjectID())
		}
		if len(query.Fields) == 0 {
			t.Fatalf("%s: empty source field list", object.ObjectID())
		}
		if owner, taken := tables[query.Table]; taken {
			t.Fatalf("table %q declared by both %s and %s", query.Table, owner, object.ObjectID())
		}
		tables[query.Table] = object.ObjectID()
	}
}

func TestRegisterBuiltins(t *testing.T) {
	registry := core.NewObjectRegistry()
	if err := RegisterBuiltins(registry); err != nil {
		t.Fatalf("register: %v", err)
	}
	object, err := registry.CreateObject("MaterialMaster")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if object.Name() != "Material Master" {
		t.Fatalf("name = %q", object.Name())
	}
	again, err := registry.CreateObject("MaterialMaster")
	if err != nil {
		t.Fatalf("create again: %v", err)
	}
	if object == again {
		t.Fatal("registry returned a shared instance")
	}
}

func TestBusinessPartnerMergeCombinesRoles(t *testing.T) {
	records := []core.Record{
		{"BusinessPartnerFullName": "GLOBEX GMBH", "CityName": "Hamburg", "Role": "FLCU01", "Country": "DE"},
		{"BusinessPartnerFullName": "globex gmbh", "CityName": "HAMBURG", "Role": "FLVN01", "Country": ""},
		{"BusinessPartnerFullName": "INITECH LLC", "CityName": "Chicago", "Role": "FLCU01", "Country": "US"},
	}
	hooker := newBusinessPartner().(core.TransformHooker)
	outcome, err := hooker.TransformHook(records)
	if err != nil {
		t.Fatalf("hook: %v", err)
	}
	if len(outcome.Records) != 2 {
		t.Fatalf("merged records = %d, want 2", len(outcome.Records))
	}
	merged := outcome.Records[0]
	roles, ok := merged["_roles"].([]string)
	if !ok || len(roles) != 2 {
		t.Fatalf("roles = %v", merged["_roles"])
	}
	if roles[0] != "FLCU01" || roles[1] != "FLVN01" {
		t.Fatalf("roles = %v", roles)
	}
	// First-seen non-empty values win.
	if merged["Country"] != "DE" {
		t.Fatalf("country = %v", merged["Country"])
	}
	if outcome.Extra["merged"] != 1 {
		t.Fatalf("merged extra = %v", outcome.Extra["merged"])
	}
}

func TestBusinessPartnerFixtureMergesToDualRolePartners(t *testing.T) {
	registry := core.NewObjectRegistry()
	if err := RegisterBuiltins(registry); err != nil {
		t.Fatalf("register: %v", err)
	}
	object, err := registry.CreateObject("BusinessPartner")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := len(object.ExtractMock()); got != 85 {
		t.Fatalf("fixture records = %d, want 85", got)
	}

	executor := runner.NewExecutor(core.NewMockGateway())
	result := executor.Execute(context.Background(), object)
	// The sequential fixture names trip the fuzzy duplicate check, which
	// warns without blocking the load.
	if result.Status != core.ObjectCompleted && result.Status != core.ObjectCompletedWithErrors {
		t.Fatalf("status = %s, findings %v", result.Status, result.Findings)
	}
	if result.Stats.TransformedRecords != 80 {
		t.Fatalf("transformed = %d, want 80 after merge", result.Stats.TransformedRecords)
	}
	if result.Stats.LoadedRecords != 80 {
		t.Fatalf("loaded = %d", result.Stats.LoadedRecords)
	}
}

func TestDefaultDependenciesReferenceKnownObjects(t *testing.T) {
	known := map[string]bool{}
	for _, factory := range Builtins() {
		known[factory().ObjectID()] = true
	}
	for _, edge := range DefaultDependencies() {
		if !known[edge[0]] {
			t.Fatalf("unknown prerequisite %q", edge[0])
		}
		if !known[edge[1]] {
			t.Fatalf("unknown dependent %q", edge[1])
		}
		if edge[0] == edge[1] {
			t.Fatalf("self edge %q", edge[0])
		}
	}
}

func TestDefaultDependenciesFormAcyclicPlan(t *testing.T) {
	graph := runner.NewDependencyGraph()
	if err := WireDefaultDependencies(graph); err != nil {
		t.Fatalf("wire: %v", err)
	}
	var ids []string
	for _, factory := range Builtins() {
		ids = append(ids, factory().ObjectID())
	}
	waves, err := graph.ExecutionWaves(ids)
	if err != nil {
		t.Fatalf("waves: %v", err)
	}
	position := map[string]int{}
	total := 0
	for idx, wave := range waves {
		for _, id := range wave {
			position[id] = idx
			total++
		}
	}
	if total != len(ids) {
		t.Fatalf("planned %d of %d objects", total, len(ids))
	}
	for _, edge := range DefaultDependencies() {
		if position[edge[0]] >= position[edge[1]] {
			t.Fatalf("%s not planned before %s", edge[0], edge[1])
		}
	}
	if wave := waves[0]; len(wave) == 0 {
		t.Fatal("empty first wave")
	}
}
