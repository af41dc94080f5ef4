// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mimedetect

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"code.gitea.io/mimedetect/modules/json"
	"code.gitea.io/mimedetect/modules/options"
	"code.gitea.io/mimedetect/modules/util"
)

// Mapping is the entry of an extension, an empty Secure means the primary type is safe to serve
type Mapping struct {
	Primary string
	Secure  string
}

// MarshalJSON writes the data set form: ["primary"] or ["primary", "secure"]
func (m Mapping) MarshalJSON() ([]byte, error) {
	if m.Secure == "" {
		return json.Marshal([]string{m.Primary})
	}
	return json.Marshal([]string{m.Primary, m.Secure})
}

// UnmarshalJSON reads ["primary"], ["primary", "secure"] or ["primary", null]
func (m *Mapping) UnmarshalJSON(data []byte) error {
	var values []*string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) == 0 || len(values) > 2 {
		return fmt.Errorf("expected 1 or 2 mimetypes, got %d", len(values))
	}
	*m = Mapping{}
	if values[0] != nil {
		m.Primary = *values[0]
	}
	if len(values) == 2 && values[1] != nil {
		m.Secure = *values[1]
	}
	return nil
}

// parseDataSet decodes a JSON object, keys starting with "_" are comments
func parseDataSet[V any](data []byte) (map[string]V, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	ret := make(map[string]V, len(raw))
	for k, v := range raw {
		if strings.HasPrefix(k, "_") {
			continue
		}
		var value V
		if err := json.Unmarshal(v, &value); err != nil {
			return nil, fmt.Errorf("invalid entry %q: %w", k, err)
		}
		ret[k] = value
	}
	return ret, nil
}

// mergeTables returns a new table with the entries of all layers, later layers win
func mergeTables[V any](layers ...map[string]V) map[string]V {
	size := 0
	for _, l := range layers {
		size += len(l)
	}
	ret := make(map[string]V, size)
	for _, l := range layers {
		maps.Copy(ret, l)
	}
	return ret
}

// buildSecureIndex walks the extensions in sorted order so the result does not
// depend on map iteration.
func buildSecureIndex(mappings map[string]Mapping) map[string]string {
	secure := make(map[string]string, len(mappings))
	for _, ext := range slices.Sorted(maps.Keys(mappings)) {
		indexSecure(secure, mappings[ext])
	}
	return secure
}

// indexSecure records the secure type of a mapping. Once a primary type has a
// substitute, a mapping without one can not make it servable as is again.
func indexSecure(secure map[string]string, m Mapping) {
	if m.Primary == "" {
		return
	}
	s := secureOrSelf(m)
	if old, ok := secure[m.Primary]; ok && old != m.Primary && s == m.Primary {
		return
	}
	secure[m.Primary] = s
}

func secureOrSelf(m Mapping) string {
	if m.Secure != "" {
		return m.Secure
	}
	return m.Primary
}

func loadDataSet[V any](d *Detector, dist, custom string) (map[string]V, error) {
	data, err := d.data.ReadDefault(dist)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", dist, err)
	}
	defaults, err := parseDataSet[V](data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", dist, err)
	}

	data, err = d.data.ReadCustom(custom)
	if err != nil {
		if !errors.Is(err, util.ErrNotExist) {
			d.logger.Warn("Failed to read %s: %v", custom, err)
		}
		return defaults, nil
	}
	overrides, err := parseDataSet[V](data)
	if err != nil {
		d.logger.Warn("Failed to parse %s: %v", custom, err)
		return defaults, nil
	}
	return mergeTables(defaults, overrides), nil
}

// EnsureMappingsLoaded loads the extension mapping once. Types registered before
// the first load are kept on top of the loaded data.
func (d *Detector) EnsureMappingsLoaded() error {
	d.mu.RLock()
	loaded := d.mappingsLoaded
	d.mu.RUnlock()
	if loaded {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ensureMappingsLoadedLocked()
}

func (d *Detector) ensureMappingsLoadedLocked() error {
	if d.mappingsLoaded {
		return nil
	}
	loaded, err := loadDataSet[Mapping](d, options.MappingDist, options.MappingFile)
	if err != nil {
		return err
	}
	d.mappings = mergeTables(loaded, d.mappings)
	d.secure = buildSecureIndex(d.mappings)
	d.mappingsLoaded = true
	return nil
}

// EnsureAliasesLoaded loads the alias table once
func (d *Detector) EnsureAliasesLoaded() error {
	d.mu.RLock()
	loaded := d.aliasesLoaded
	d.mu.RUnlock()
	if loaded {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.aliasesLoaded {
		return nil
	}
	aliases, err := loadDataSet[string](d, options.AliasesDist, options.AliasesFile)
	if err != nil {
		return err
	}
	d.aliases = aliases
	d.aliasesLoaded = true
	return nil
}

// RegisterType adds or replaces the mapping of one extension. Unlike the
// historical "skip loading once anything is registered" rule, registering before
// the first load does not suppress the data sets, the registration is layered on top.
// An empty secureMimeType never clears a substitute another extension sets for mimetype.
func (d *Detector) RegisterType(extension, mimetype, secureMimeType string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mappings[extension] = Mapping{Primary: mimetype, Secure: secureMimeType}
	d.secure = buildSecureIndex(d.mappings)
}

// RegisterTypes merges a batch of mappings, the batch wins over existing entries
func (d *Detector) RegisterTypes(types map[string]Mapping) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mappings = mergeTables(d.mappings, types)
	d.secure = buildSecureIndex(d.mappings)
}

// AllMappings returns a copy of the extension mapping
func (d *Detector) AllMappings() (map[string]Mapping, error) {
	if err := d.EnsureMappingsLoaded(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Clone(d.mappings), nil
}

// AllAliases returns a copy of the alias table, custom aliases included
func (d *Detector) AllAliases() (map[string]string, error) {
	if err := d.EnsureAliasesLoaded(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Clone(d.aliases), nil
}

// OnlyDefaultAliases returns the bundled aliases without custom overrides.
// The mapping is loaded too, and the in-memory alias table is replaced by the
// bundled one until the next Reset.
func (d *Detector) OnlyDefaultAliases() (map[string]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.ensureMappingsLoadedLocked(); err != nil {
		return nil, err
	}

	data, err := d.data.ReadDefault(options.AliasesDist)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", options.AliasesDist, err)
	}
	aliases, err := parseDataSet[string](data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", options.AliasesDist, err)
	}
	d.aliases = aliases
	d.aliasesLoaded = true

	d.iconMu.Lock()
	d.iconCache = map[string]string{}
	d.iconMu.Unlock()
	return maps.Clone(aliases), nil
}

// SecureMimeType returns the type which is safe to send to clients for mimetype
func (d *Detector) SecureMimeType(mimetype string) string {
	if err := d.EnsureMappingsLoaded(); err != nil {
		d.logger.Error("Unable to load mimetype mapping: %v", err)
		return OctetStream
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if secure, ok := d.secure[mimetype]; ok {
		return secure
	}
	return OctetStream
}
