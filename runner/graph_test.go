package runner

import "testing"

func TestExecutionWavesLayering(t *testing.T) {
	graph := NewDependencyGraph()
	if err := graph.AddEdge("BusinessPartner", "CustomerOpenItem"); err != nil {
		t.Fatalf("add edge: %v", err)
	}
	if err := graph.AddEdge("BusinessPartner", "VendorOpenItem"); err != nil {
		t.Fatalf("add edge: %v", err)
	}

	waves, err := graph.ExecutionWaves([]string{"BusinessPartner", "CustomerOpenItem", "VendorOpenItem"})
	if err != nil {
		t.Fatalf("execution waves: %v", err)
	}
	if len(waves) != 2 {
		t.Fatalf("expected 2 waves, got %v", waves)
	}
	if len(waves[0]) != 1 || waves[0][0] != "BusinessPartner" {
		t.Fatalf("wave 0 = %v", waves[0])
	}
	if len(waves[1]) != 2 || waves[1][0] != "CustomerOpenItem" || waves[1][1] != "VendorOpenItem" {
		t.Fatalf("wave 1 = %v", waves[1])
	}
}

func TestExecutionWavesTrivialGraph(t *testing.T) {
	graph := NewDependencyGraph()
	waves, err := graph.ExecutionWaves([]string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("execution waves: %v", err)
	}
	if len(waves) != 1 || len(waves[0]) != 3 {
		t.Fatalf("trivial graph must yield one wave, got %v", waves)
	}
}

func TestExecutionWavesIgnoresUnrequestedPrerequisites(t *testing.T) {
	graph := NewDependencyGraph()
	_ = graph.AddEdge("MaterialMaster", "MaterialBOM")
	waves, err := graph.ExecutionWaves([]string{"MaterialBOM"})
	if err != nil {
		t.Fatalf("execution waves: %v", err)
	}
	if len(waves) != 1 || waves[0][0] != "MaterialBOM" {
		t.Fatalf("unrequested prerequisites must not block, got %v", waves)
	}
}

func TestExecutionWavesTopologicalInvariant(t *testing.T) {
	graph := NewDependencyGraph()
	edges := [][2]string{
		{"GLAccountMaster", "GLOpenItem"},
		{"BusinessPartner", "CustomerOpenItem"},
		{"GLAccountMaster", "CustomerOpenItem"},
		{"MaterialMaster", "MaterialBOM"},
		{"MaterialBOM", "ProductionVersion"},
		{"Routing", "ProductionVersion"},
	}
	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			t.Fatalf("add edge: %v", err)
		}
	}
	requested := []string{
		"ProductionVersion", "MaterialBOM", "Routing", "MaterialMaster",
		"CustomerOpenItem", "GLOpenItem", "GLAccountMaster", "BusinessPartner",
	}
	waves, err := graph.ExecutionWaves(requested)
	if err != nil {
		t.Fatalf("execution waves: %v", err)
	}

	waveOf := map[string]int{}
	for idx, wave := range waves {
		for _, id := range wave {
			waveOf[id] = idx
		}
	}
	for _, edge := range edges {
		if waveOf[edge[0]] >= waveOf[edge[1]] {
			t.Fatalf("edge %s -> %s violated: waves %v", edge[0], edge[1], waves)
		}
	}
}

func TestExecutionWavesCycleDetected(t *testing.T) {
	graph := NewDependencyGraph()
	_ = graph.AddEdge("A", "B")
	_ = graph.AddEdge("B", "C")
	_ = graph.AddEdge("C", "A")
	if _, err := graph.ExecutionWaves([]string{"A", "B", "C"}); err == nil {
		t.Fatalf("cycle must be detected")
	}
}

func TestExecutionWavesDeduplicatesRequest(t *testing.T) {
	graph := NewDependencyGraph()
	waves, err := graph.ExecutionWaves([]string{"A", "A", "B"})
	if err != nil {
		t.Fatalf("execution waves: %v", err)
	}
	if len(waves) != 1 || len(waves[0]) != 2 {
		t.Fatalf("duplicates must collapse, got %v", waves)
	}
}

func TestAddEdgeRejectsSelfDependency(t *testing.T) {
	graph := NewDependencyGraph()
	if err := graph.AddEdge("A", "A"); err == nil {
		t.Fatalf("self dependency must be rejected")
	}
}

func TestPrerequisites(t *testing.T) {
	graph := NewDependencyGraph()
	_ = graph.AddEdge("BusinessPartner", "CreditLimit")
	_ = graph.AddEdge("GLAccountMaster", "CreditLimit")
	prereqs := graph.Prerequisites("CreditLimit")
	if len(prereqs) != 2 {
		t.Fatalf("expected 2 prerequisites, got %v", prereqs)
	}
}
