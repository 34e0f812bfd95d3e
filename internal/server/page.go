package server

// page is the browser front end. Clicks on the chart are converted to chart
// coordinates and sent to /api/select for hit-testing.
const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>tidytree</title>
<style>
  body { margin: 0; font-family: system-ui, sans-serif; display: flex; height: 100vh; }
  #chart { flex: 1; overflow: auto; background: #fafafa; }
  #chart svg { display: block; cursor: pointer; }
  aside { width: 260px; padding: 16px; border-left: 1px solid #ddd; background: #fff; }
  aside h2 { font-size: 14px; text-transform: uppercase; color: #888; margin: 0 0 8px; }
  dl { display: grid; grid-template-columns: auto 1fr; gap: 4px 12px; margin: 0 0 16px; }
  dt { color: #888; }
  button { display: block; width: 100%; margin: 4px 0; padding: 6px; }
  #status { color: #b33; font-size: 13px; min-height: 1.2em; }
  kbd { font-size: 11px; color: #888; }
</style>
</head>
<body>
<div id="chart"></div>
<aside>
  <h2>Selection</h2>
  <dl>
    <dt>Label</dt><dd id="label"></dd>
    <dt>ID</dt><dd id="id"></dd>
    <dt>Level</dt><dd id="level"></dd>
    <dt>Children</dt><dd id="children"></dd>
    <dt>Nodes</dt><dd id="nodes"></dd>
    <dt>Zoom</dt><dd id="zoom"></dd>
  </dl>
  <button data-action="add">Add child <kbd>a</kbd></button>
  <button data-action="rename">Rename <kbd>r</kbd></button>
  <button data-action="remove">Remove <kbd>x</kbd></button>
  <button data-action="zoomin">Zoom in <kbd>+</kbd></button>
  <button data-action="zoomout">Zoom out <kbd>-</kbd></button>
  <button data-action="save">Save <kbd>s</kbd></button>
  <p id="status"></p>
</aside>
<script>
const chart = document.getElementById('chart');
const status = document.getElementById('status');

async function call(method, url, body) {
  const opts = { method };
  if (body !== undefined) {
    opts.headers = { 'Content-Type': 'application/json' };
    opts.body = JSON.stringify(body);
  }
  const res = await fetch(url, opts);
  const data = await res.json();
  if (!res.ok) {
    status.textContent = data.error;
    return null;
  }
  status.textContent = '';
  return data;
}

function show(state) {
  if (!state) return;
  const s = state.selection;
  for (const k of ['label', 'id', 'level', 'children']) {
    document.getElementById(k).textContent = s[k];
  }
  document.getElementById('nodes').textContent = state.nodes;
  document.getElementById('zoom').textContent = state.zoom.toFixed(2);
}

async function refresh(state) {
  show(state || await call('GET', '/api/selection'));
  const res = await fetch('/api/chart.svg');
  chart.innerHTML = await res.text();
}

chart.addEventListener('click', async (e) => {
  const svg = chart.querySelector('svg');
  if (!svg) return;
  const pt = svg.createSVGPoint();
  pt.x = e.clientX;
  pt.y = e.clientY;
  const p = pt.matrixTransform(svg.getScreenCTM().inverse());
  const state = await call('POST', '/api/select?x=' + p.x + '&y=' + p.y);
  if (state && state.hit) refresh(state);
});

const actions = {
  add: () => call('POST', '/api/nodes'),
  rename: () => {
    const label = prompt('Label');
    return label ? call('PUT', '/api/selection/label', { label }) : null;
  },
  remove: () => call('DELETE', '/api/selection'),
  zoomin: () => call('POST', '/api/zoom/in'),
  zoomout: () => call('POST', '/api/zoom/out'),
  save: async () => {
    const res = await call('POST', '/api/save');
    if (res) status.textContent = 'saved to ' + res.path;
    return null;
  },
};

async function run(name) {
  const state = await actions[name]();
  if (state) refresh(state);
}

document.querySelectorAll('button').forEach(b => {
  b.addEventListener('click', () => run(b.dataset.action));
});

const keys = { a: 'add', r: 'rename', x: 'remove', Delete: 'remove', '+': 'zoomin', '-': 'zoomout', s: 'save' };
document.addEventListener('keydown', (e) => {
  if (keys[e.key]) run(keys[e.key]);
});

refresh();
</script>
</body>
</html>
`
