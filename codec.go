/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package baseenum

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type jsonConstant struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type jsonTable struct {
	Type      string         `json:"type"`
	Constants []jsonConstant `json:"constants"`
}

// MarshalJSON encodes the table as {"type": ..., "constants": [{"name", "value"}]}
// so declaration order survives.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	out := jsonTable{Type: t.typeName, Constants: make([]jsonConstant, len(t.constants))}
	for i, c := range t.constants {
		out.Constants[i] = jsonConstant{Name: c.Name, Value: c.Value}
	}
	return json.Marshal(out)
}

// MarshalYAML encodes the table as a mapping with an ordered "constants"
// mapping of name to value.
func (t *Table[V]) MarshalYAML() (interface{}, error) {
	constants := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range t.constants {
		value := &yaml.Node{}
		if err := value.Encode(c.Value); err != nil {
			return nil, err
		}
		constants.Content = append(constants.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name},
			value,
		)
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "type"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.typeName},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "constants"},
			constants,
		},
	}, nil
}
