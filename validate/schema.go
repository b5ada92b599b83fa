package validate

// packageSchema is the JSON schema every package metadata file must satisfy.
const packageSchema = `{
  "type": "object",
  "required": ["name", "display_name", "category", "description", "cross_platform"],
  "properties": {
    "name": {"type": "string", "pattern": "^[a-z0-9-_]+$"},
    "display_name": {"type": "string"},
    "category": {"type": "string"},
    "description": {"type": "string"},
    "homepage": {"type": "string", "format": "uri"},
    "license": {"type": "string"},
    "cross_platform": {
      "type": "object",
      "properties": {
        "linux": {
          "type": "object",
          "properties": {
            "apt": {"type": "array", "items": {"type": "string"}},
            "snap": {"type": "array", "items": {"type": "string"}},
            "flatpak": {"type": "array", "items": {"type": "string"}},
            "dnf": {"type": "array", "items": {"type": "string"}},
            "pacman": {"type": "array", "items": {"type": "string"}},
            "zypper": {"type": "array", "items": {"type": "string"}}
          }
        },
        "macos": {
          "type": "object",
          "properties": {
            "brew": {"type": "array", "items": {"type": "string"}}
          }
        },
        "windows": {
          "type": "object",
          "properties": {
            "winget": {"type": "array", "items": {"type": "string"}},
            "chocolatey": {"type": "array", "items": {"type": "string"}},
            "scoop": {"type": "array", "items": {"type": "string"}}
          }
        }
      }
    },
    "popularity": {
      "type": "object",
      "properties": {
        "rank": {"type": "integer", "minimum": 1},
        "downloads_per_month": {"type": "integer", "minimum": 0},
        "github_stars": {"type": "integer", "minimum": 0},
        "search_frequency": {"type": "integer", "minimum": 0, "maximum": 100}
      }
    },
    "security": {
      "type": "object",
      "properties": {
        "score": {"type": "number", "minimum": 0, "maximum": 10},
        "last_audit": {"type": "string", "format": "date"},
        "vulnerabilities": {"type": "array"},
        "cve_count": {"type": "integer", "minimum": 0},
        "security_features": {"type": "array", "items": {"type": "string"}}
      }
    },
    "similar_packages": {"type": "array", "items": {"type": "string"}},
    "alternatives": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "reason"],
        "properties": {
          "name": {"type": "string"},
          "reason": {"type": "string"}
        }
      }
    },
    "tags": {"type": "array", "items": {"type": "string"}},
    "updated_at": {"type": "string", "format": "date-time"}
  }
}`
