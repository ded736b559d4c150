package workflow

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

const scheduleTrigger = "schedule"

// Parse extracts a Summary from the YAML content of a workflow file.
// fileName is used as the display name when the workflow has no name.
func Parse(data []byte, fileName string) (*Summary, error) {
	root, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("workflow must be a mapping, got %s", kindName(root))
	}

	name, err := extractName(root, fileName)
	if err != nil {
		return nil, err
	}

	triggers, err := extractTriggers(triggerConfig(root))
	if err != nil {
		return nil, err
	}

	jobs, err := extractJobs(lookup(root, "jobs"))
	if err != nil {
		return nil, err
	}

	return &Summary{
		Name:     name,
		File:     fileName,
		Triggers: triggers,
		Jobs:     jobs,
	}, nil
}

func decodeDocument(data []byte) (*yaml.Node, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		return nil, errors.New("expected a single document but found more")
	}

	if len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}

	return resolve(doc.Content[0]), nil
}

func extractName(root *yaml.Node, fileName string) (string, error) {
	node := lookup(root, "name")
	if isNull(node) {
		return fileName, nil
	}
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("name must be a scalar, got %s", kindName(node))
	}
	return node.Value, nil
}

// triggerConfig returns the value of the trigger key. YAML 1.1 parsers read
// an unquoted "on" as boolean true, so a boolean true key is checked first and
// a quoted "on" string key is used when that is missing or empty.
func triggerConfig(root *yaml.Node) *yaml.Node {
	if node := lookupTrue(root); !isEmpty(node) {
		return node
	}
	if node := lookup(root, "on"); !isEmpty(node) {
		return node
	}
	return nil
}

func extractTriggers(config *yaml.Node) ([]string, error) {
	triggers := []string{}

	if isNull(config) {
		return triggers, nil
	}

	switch config.Kind {
	case yaml.ScalarNode:
		if config.ShortTag() == "!!str" {
			triggers = append(triggers, config.Value)
		}
	case yaml.SequenceNode:
		for i, item := range config.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode || isNull(item) {
				return nil, fmt.Errorf("trigger %d must be a name, got %s", i, kindName(item))
			}
			triggers = append(triggers, item.Value)
		}
	case yaml.MappingNode:
		for _, entry := range entries(config) {
			trigger := entry.key.Value
			if trigger != scheduleTrigger {
				triggers = append(triggers, trigger)
				continue
			}
			for _, schedule := range scheduleEntries(entry.value) {
				triggers = append(triggers, fmt.Sprintf("%s: %s", scheduleTrigger, cronExpression(schedule)))
			}
		}
	}

	return triggers, nil
}

func scheduleEntries(node *yaml.Node) []*yaml.Node {
	if node != nil && node.Kind == yaml.SequenceNode {
		items := make([]*yaml.Node, 0, len(node.Content))
		for _, item := range node.Content {
			items = append(items, resolve(item))
		}
		return items
	}
	return []*yaml.Node{node}
}

func cronExpression(schedule *yaml.Node) string {
	if schedule == nil || schedule.Kind != yaml.MappingNode {
		return ""
	}
	cron := lookup(schedule, "cron")
	if isNull(cron) || cron.Kind != yaml.ScalarNode {
		return ""
	}
	return cron.Value
}

func extractJobs(node *yaml.Node) ([]string, error) {
	jobs := []string{}

	if node == nil {
		return jobs, nil
	}
	if isNull(node) || node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("jobs must be a mapping, got %s", kindName(node))
	}

	for _, entry := range entries(node) {
		jobs = append(jobs, entry.key.Value)
	}

	return jobs, nil
}

var (
	yaml11True  = []string{"yes", "Yes", "YES", "on", "On", "ON", "true", "True", "TRUE"}
	yaml11False = []string{"no", "No", "NO", "off", "Off", "OFF", "false", "False", "FALSE"}
)

type mappingEntry struct {
	key   *yaml.Node
	value *yaml.Node
}

// entries returns the key/value pairs of a mapping with duplicate keys
// collapsed: each key keeps the position of its first occurrence and the
// value of its last.
func entries(mapping *yaml.Node) []mappingEntry {
	var result []mappingEntry
	positions := make(map[string]int)

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := resolve(mapping.Content[i])
		value := resolve(mapping.Content[i+1])

		id := keyIdentity(key)
		if pos, ok := positions[id]; ok {
			result[pos].value = value
			continue
		}
		positions[id] = len(result)
		result = append(result, mappingEntry{key: key, value: value})
	}

	return result
}

// keyIdentity identifies a mapping key the way a YAML 1.1 loader would,
// so plain on, yes and true all name the same boolean key.
func keyIdentity(key *yaml.Node) string {
	if key.Kind != yaml.ScalarNode {
		return fmt.Sprintf("node:%p", key)
	}
	if isPlain(key) || key.ShortTag() == "!!bool" {
		if slices.Contains(yaml11True, key.Value) {
			return "!!bool:true"
		}
		if slices.Contains(yaml11False, key.Value) {
			return "!!bool:false"
		}
	}
	return key.ShortTag() + ":" + key.Value
}

func isPlain(node *yaml.Node) bool {
	return node.Style == 0
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	id := "!!str:" + key
	for _, entry := range entries(mapping) {
		if keyIdentity(entry.key) == id {
			return entry.value
		}
	}
	return nil
}

func lookupTrue(mapping *yaml.Node) *yaml.Node {
	for _, entry := range entries(mapping) {
		if keyIdentity(entry.key) == "!!bool:true" {
			return entry.value
		}
	}
	return nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func isEmpty(node *yaml.Node) bool {
	if isNull(node) {
		return true
	}
	switch node.Kind {
	case yaml.SequenceNode, yaml.MappingNode:
		return len(node.Content) == 0
	case yaml.ScalarNode:
		return node.ShortTag() == "!!str" && node.Value == ""
	}
	return false
}

func kindName(node *yaml.Node) string {
	if isNull(node) {
		return "null"
	}
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar " + node.ShortTag()
	}
	return "unknown node"
}
