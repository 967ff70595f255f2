package render

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" type="text/css" href="{{.StyleURL}}">
  <script type="text/javascript" src="{{.ScriptURL}}"></script>
  <style>
    html, body { margin: 0; padding: 0; overflow: hidden; font-family: sans-serif; }
    #molview-root { display: flex; width: {{.TotalWidth}}px; height: {{.Height}}px; }
    #molview-grid { display: grid; width: {{.Width}}px; height: {{.Height}}px;
      grid-template-rows: repeat({{.Rows}}, 1fr); grid-template-columns: repeat({{.Cols}}, 1fr); gap: 2px; }
    .molview-cell { position: relative; min-width: 0; min-height: 0; }
    .molview-label { position: absolute; left: 6px; top: 4px; z-index: 10; font-size: 11px;
      color: #495057; background: rgba(255,255,255,0.7); padding: 1px 4px; border-radius: 3px; }
    #molview-panel { width: 280px; flex-shrink: 0; border-left: 1px solid #dee2e6; padding: 8px;
      box-sizing: border-box; font-size: 12px; overflow-y: auto; }
    #molview-panel h4 { margin: 4px 0 8px; font-size: 13px; }
    #molview-panel button { display: block; width: 100%; margin: 2px 0; text-align: left;
      background: #f8f9fa; border: 1px solid #dee2e6; border-radius: 3px; padding: 3px 6px; cursor: pointer; }
  </style>
</head>
<body>
<div id="molview-root">
  <div id="molview-grid"></div>
  {{if .ShowPanel}}<div id="molview-panel"><h4>Structures</h4><div id="molview-list"></div>
    <h4>Layout</h4><button data-layout="single">Single</button><button data-layout="grid">Grid</button></div>{{end}}
</div>
<script type="application/json" id="molview-payload">{{.Payload}}</script>
<script type="text/javascript">
(function () {
  var payload = JSON.parse(document.getElementById('molview-payload').textContent);
  var grid = document.getElementById('molview-grid');
  var viewers = [];

  function hexToInt(hex) { return parseInt(String(hex).replace('#', ''), 16); }

  function applyCanvas(viewer, style) {
    var canvas = viewer.plugin.canvas3d;
    if (!canvas) { return; }
    var props = {
      renderer: { backgroundColor: hexToInt(style.background) },
      trackball: { animate: style.spin.enabled
        ? { name: 'spin', params: { speed: style.spin.speed } }
        : { name: 'off', params: {} } }
    };
    if (style.illustrative) {
      props.postprocessing = {
        outline: { name: 'on', params: { scale: 1, threshold: 0.33, color: 0x000000, includeTransparent: true } },
        occlusion: { name: 'on', params: { samples: 32, radius: 5, bias: 0.8, blurKernelSize: 15 } }
      };
    }
    canvas.setProps(props);
  }

  // Molstar built-ins for descriptor themes it does not register by name
  var builtinThemes = {
    'rainbow-sequence': function (params) {
      return { color: 'sequence-id', colorParams: { list: {
        kind: 'interpolate', colors: (params.colors || []).map(hexToInt) } } };
    },
    'custom-chain-colors': function () { return { color: 'chain-id', colorParams: {} }; }
  };

  var UNCOLORED = 0xCCCCCC;
  var payloadThemeCount = 0;

  // registerPayloadTheme adds a color theme that reads coloring.chains and
  // coloring.residues, keyed by auth_asym_id and auth_seq_id
  function registerPayloadTheme(plugin, coloring) {
    var chains = {};
    var residues = {};
    Object.keys(coloring.chains || {}).forEach(function (id) {
      chains[id] = hexToInt(coloring.chains[id]);
    });
    Object.keys(coloring.residues || {}).forEach(function (id) {
      var numbers = (coloring.numbers || {})[id] || [];
      coloring.residues[id].forEach(function (c, i) {
        var seq = i < numbers.length ? numbers[i] : i + 1;
        residues[id + ':' + seq] = hexToInt(c);
      });
    });

    function color(location) {
      var unit = location && location.unit;
      if (!unit || unit.kind !== 0) { return UNCOLORED; }
      var h = unit.model.atomicHierarchy;
      var chain = h.chains.auth_asym_id.value(unit.chainIndex[location.element]);
      var seq = h.residues.auth_seq_id.value(unit.residueIndex[location.element]);
      var c = residues[chain + ':' + seq];
      if (c === undefined) { c = chains[chain]; }
      return c === undefined ? UNCOLORED : c;
    }

    var name = 'molview-payload-' + (payloadThemeCount++);
    var provider = {
      name: name,
      label: 'molview ' + coloring.theme,
      category: 'molview',
      factory: function (ctx, props) {
        return { factory: provider.factory, granularity: 'group', color: color, props: props,
          description: 'Colors computed by molview' };
      },
      getParams: function () { return {}; },
      defaultValues: {},
      isApplicable: function () { return true; }
    };
    plugin.representation.structure.themes.colorThemeRegistry.add(provider);
    return name;
  }

  function themeFor(plugin, style, model) {
    var coloring = model.coloring || {};
    var hasChains = Object.keys(coloring.chains || {}).length > 0;
    var hasResidues = Object.keys(coloring.residues || {}).length > 0;
    if (hasChains || hasResidues) {
      return { color: registerPayloadTheme(plugin, coloring), colorParams: {} };
    }
    var name = coloring.theme || style.color.name;
    if (name !== style.color.name) { return { color: name, colorParams: {} }; }
    if (builtinThemes[name]) { return builtinThemes[name](style.color.params || {}); }
    return { color: name, colorParams: style.color.params };
  }

  function representations(style) {
    var reps = [];
    if (style.representations.cartoon) { reps.push('cartoon'); }
    if (style.representations.stick) { reps.push('ball-and-stick'); }
    if (style.representations.sphere) { reps.push('spacefill'); }
    if (style.representations.line) { reps.push('line'); }
    return reps;
  }

  async function loadModel(viewer, style, model) {
    var plugin = viewer.plugin;
    var data = await plugin.builders.data.rawData({ data: model.data, label: model.name });
    var trajectory = await plugin.builders.structure.parseTrajectory(data, model.format);
    var mdl = await plugin.builders.structure.createModel(trajectory);
    var structure = await plugin.builders.structure.createStructure(mdl);
    var theme = themeFor(plugin, style, model);

    var component = style.remove_solvent
      ? await plugin.builders.structure.tryCreateComponentStatic(structure, 'polymer')
      : await plugin.builders.structure.tryCreateComponentStatic(structure, 'all');
    if (!component) { return; }

    var reps = representations(style);
    for (var i = 0; i < reps.length; i++) {
      await plugin.builders.structure.representation.addRepresentation(component,
        { type: reps[i], color: theme.color, colorParams: theme.colorParams });
    }
    if (style.surface.enabled) {
      var surfaceColor = style.surface.inherit_color || !style.surface.color
        ? theme
        : { color: 'uniform', colorParams: { value: hexToInt(style.surface.color) } };
      await plugin.builders.structure.representation.addRepresentation(component, {
        type: 'molecular-surface',
        typeParams: { alpha: style.surface.opacity / 100 },
        color: surfaceColor.color,
        colorParams: surfaceColor.colorParams
      });
    }
  }

  async function createSession(session, index) {
    var cell = document.createElement('div');
    cell.className = 'molview-cell';
    cell.id = 'molview-cell-' + index;
    grid.appendChild(cell);

    var viewer = await molstar.Viewer.create(cell, {
      layoutIsExpanded: false,
      layoutShowControls: false,
      layoutShowRemoteState: false,
      layoutShowSequence: {{.ShowSequence}},
      layoutShowLog: false,
      layoutShowLeftPanel: false,
      viewportShowExpand: false,
      viewportShowSelectionMode: false,
      viewportShowAnimation: {{.ShowAnimation}}
    });
    applyCanvas(viewer, session.style);
    for (var i = 0; i < session.models.length; i++) {
      await loadModel(viewer, session.style, session.models[i]);
    }
    if (session.models.length > 0) {
      var label = document.createElement('div');
      label.className = 'molview-label';
      label.textContent = session.models.map(function (m) { return m.name; }).join(', ');
      cell.appendChild(label);
    }
    viewer.plugin.managers.camera.reset();
    viewers.push({ viewer: viewer, cell: cell, session: session });
  }

  function setLayout(mode) {
    if (mode === 'single') {
      grid.style.gridTemplateRows = '1fr';
      grid.style.gridTemplateColumns = '1fr';
      viewers.forEach(function (v, i) { v.cell.style.display = i === 0 ? '' : 'none'; });
    } else {
      grid.style.gridTemplateRows = 'repeat(' + payload.rows + ', 1fr)';
      grid.style.gridTemplateColumns = 'repeat(' + payload.cols + ', 1fr)';
      viewers.forEach(function (v) { v.cell.style.display = ''; });
    }
    viewers.forEach(function (v) { v.viewer.plugin.layout.events.updated.next(); });
  }

  function buildPanel() {
    var list = document.getElementById('molview-list');
    if (!list) { return; }
    viewers.forEach(function (v, i) {
      v.session.models.forEach(function (m) {
        var b = document.createElement('button');
        b.textContent = m.name;
        b.onclick = function () {
          setLayout('single');
          viewers.forEach(function (o, j) { o.cell.style.display = i === j ? '' : 'none'; });
        };
        list.appendChild(b);
      });
    });
    document.querySelectorAll('#molview-panel button[data-layout]').forEach(function (b) {
      b.onclick = function () { setLayout(b.getAttribute('data-layout')); };
    });
  }

  (async function () {
    for (var i = 0; i < payload.sessions.length; i++) {
      await createSession(payload.sessions[i], i);
    }
    buildPanel();
    if (payload.layout) { setLayout(payload.layout); }
  })();
})();
</script>
</body>
</html>`

const iframeTemplate = `<iframe id="%s" width="%d" height="%d" frameborder="0" srcdoc="%s" style="border: none;"></iframe>`
