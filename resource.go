package main

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v2"
)

// packResources stores the composed sheets and the atlas
// descriptions in the resource file so the engine can load
// them without touching the asset tree. Sheets go into the
// "spritesheets" bucket keyed by "{entity}_{direction}",
// atlas descriptions into the "atlases" bucket keyed by
// entity name.
func packResources(
	resourceFile *bolt.DB,
	sheets map[string][]byte,
	atlases map[string]EntityMeta,
) error {
	err := resourceFile.Update(func(tx *bolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists(
			[]byte("spritesheets"))

		if err != nil {
			return err
		}

		for id, pngData := range sheets {
			err = buck.Put([]byte(id), pngData)

			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf(
			"failed to pack spritesheets: %w", err)
	}

	for entity, meta := range atlases {
		err = resourceFile.Update(func(tx *bolt.Tx) error {
			buck, err := tx.CreateBucketIfNotExists(
				[]byte("atlases"))

			if err != nil {
				return err
			}

			data, err := yaml.Marshal(meta)

			if err != nil {
				return err
			}

			err = buck.Put([]byte(entity), data)

			if err != nil {
				return err
			}

			return nil
		})

		if err != nil {
			return fmt.Errorf(
				"failed to pack the atlas for '%s': %w", entity, err)
		}
	}

	return nil
}
